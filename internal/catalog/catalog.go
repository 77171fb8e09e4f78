package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// Source names one of the rank columns that feed the working rank
type Source string

const (
	SourceESPN      Source = "espn"
	SourceFP        Source = "fp"
	SourceDS        Source = "ds"
	SourceConsensus Source = "consensus"
)

// ParseSource resolves a source name; ok is false for anything unknown
func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceESPN:
		return SourceESPN, true
	case SourceFP:
		return SourceFP, true
	case SourceDS:
		return SourceDS, true
	case SourceConsensus:
		return SourceConsensus, true
	}
	return "", false
}

// Blend weights for the per-source ranks, renormalized over whichever
// sources are present on a record.
const (
	weightESPN = 0.5
	weightFP   = 0.3
	weightDS   = 0.2
)

// Catalog is an insertion-ordered table of players keyed by normalized name.
// Entries are never removed.
type Catalog struct {
	byKey map[string]*models.Player
	order []string
}

// New returns an empty catalog
func New() *Catalog {
	return &Catalog{byKey: make(map[string]*models.Player)}
}

// Normalize produces the catalog key for a player name
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load bulk-inserts records. Duplicate keys are last-write-wins so an edited
// spreadsheet with repeated rows still loads; the earlier insertion position
// is kept. Working ranks are recomputed for every record.
func (c *Catalog) Load(players []models.Player) {
	for i := range players {
		p := players[i]
		Recompute(&p)
		key := Normalize(p.Name)
		if key == "" {
			continue
		}
		if _, ok := c.byKey[key]; !ok {
			c.order = append(c.order, key)
		}
		c.byKey[key] = &p
	}
}

// Recompute derives the working rank: a weighted blend of the source ranks
// that are present, falling back to the consensus rank, else the unranked
// sentinel +Inf (unranked players sort last, stable by insertion order).
func Recompute(p *models.Player) {
	var sum, wsum float64
	if p.ESPNRank != nil {
		sum += float64(*p.ESPNRank) * weightESPN
		wsum += weightESPN
	}
	if p.FPRank != nil {
		sum += float64(*p.FPRank) * weightFP
		wsum += weightFP
	}
	if p.DSRank != nil {
		sum += float64(*p.DSRank) * weightDS
		wsum += weightDS
	}
	if wsum > 0 {
		p.WorkRank = sum / wsum
		return
	}
	if p.Consensus != nil {
		p.WorkRank = float64(*p.Consensus)
		return
	}
	p.WorkRank = math.Inf(1)
}

// Lookup finds a player by exact normalized name; it never creates
func (c *Catalog) Lookup(name string) (*models.Player, bool) {
	p, ok := c.byKey[Normalize(name)]
	return p, ok
}

// Resolve finds a player by exact normalized name, then by the first
// substring match in insertion order. Used when recording picks typed live.
func (c *Catalog) Resolve(name string) (*models.Player, bool) {
	if p, ok := c.Lookup(name); ok {
		return p, true
	}
	needle := Normalize(name)
	if needle == "" {
		return nil, false
	}
	for _, key := range c.order {
		if strings.Contains(key, needle) {
			return c.byKey[key], true
		}
	}
	return nil, false
}

// Find returns all players whose name contains the query, case-insensitive,
// in insertion order
func (c *Catalog) Find(query string) []*models.Player {
	needle := Normalize(query)
	var hits []*models.Player
	for _, key := range c.order {
		if strings.Contains(key, needle) {
			hits = append(hits, c.byKey[key])
		}
	}
	return hits
}

// SetSourceRank updates one rank column and recomputes the working rank
func (c *Catalog) SetSourceRank(name string, src Source, value int) (*models.Player, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return nil, &PlayerNotFoundError{Name: name}
	}
	if value <= 0 {
		return nil, &InvalidRankError{Source: src, Value: value}
	}
	v := value
	switch src {
	case SourceESPN:
		p.ESPNRank = &v
	case SourceFP:
		p.FPRank = &v
	case SourceDS:
		p.DSRank = &v
	case SourceConsensus:
		p.Consensus = &v
	}
	Recompute(p)
	return p, nil
}

// SetTags replaces the player's risk tag set
func (c *Catalog) SetTags(name string, tags []string) (*models.Player, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return nil, &PlayerNotFoundError{Name: name}
	}
	cleaned := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}
	sort.Strings(cleaned)
	p.RiskTags = cleaned
	return p, nil
}

// AddPlayer inserts a new record with a consensus rank and no source ranks
func (c *Catalog) AddPlayer(name string, pos models.Position, team string, rank int) (*models.Player, error) {
	key := Normalize(name)
	if _, ok := c.byKey[key]; ok {
		return nil, &DuplicateKeyError{Name: name}
	}
	if rank <= 0 {
		return nil, &InvalidRankError{Source: SourceConsensus, Value: rank}
	}
	r := rank
	p := &models.Player{
		Name:      strings.TrimSpace(name),
		Position:  pos,
		Team:      strings.ToUpper(strings.TrimSpace(team)),
		Consensus: &r,
	}
	Recompute(p)
	c.byKey[key] = p
	c.order = append(c.order, key)
	return p, nil
}

// CreatePlaceholder inserts an unranked record for a player drafted live who
// is missing from the rankings table. Position and team are unknown and the
// entry is tagged volatile so suggestions treat it as risky. Only the
// pick-recording path calls this.
func (c *Catalog) CreatePlaceholder(name string) *models.Player {
	key := Normalize(name)
	if p, ok := c.byKey[key]; ok {
		return p
	}
	p := &models.Player{
		Name:     strings.TrimSpace(name),
		Position: models.UNK,
		Notes:    "added-live",
		RiskTags: []string{"volatile"},
	}
	Recompute(p)
	c.byKey[key] = p
	c.order = append(c.order, key)
	return p
}

// Players returns all records in insertion order
func (c *Catalog) Players() []*models.Player {
	out := make([]*models.Player, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// Available returns players not in the taken set, sorted ascending by working
// rank with ties (and unranked entries) stable by insertion order
func (c *Catalog) Available(taken map[string]models.PickRecord) []*models.Player {
	var avail []*models.Player
	for _, key := range c.order {
		if _, gone := taken[key]; !gone {
			avail = append(avail, c.byKey[key])
		}
	}
	sort.SliceStable(avail, func(i, j int) bool {
		return avail[i].WorkRank < avail[j].WorkRank
	})
	return avail
}

// Len reports the number of records
func (c *Catalog) Len() int {
	return len(c.order)
}
