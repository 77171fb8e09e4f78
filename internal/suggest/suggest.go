package suggest

import (
	"math"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// Config holds the tunable knobs of the suggestion policy. Everything here
// is an input with documented defaults, not hard-coded business rules.
type Config struct {
	// VolatileTags mark a player risky regardless of positional need
	VolatileTags []string `yaml:"volatile_tags" json:"volatileTags"`
	// SafeTags offset volatile tags one for one, matching how scouts tag
	// a proven player who also carries an injury note
	SafeTags []string `yaml:"safe_tags" json:"safeTags"`
	// TopN is how many best-available candidates get partitioned
	TopN int `yaml:"top_n" json:"topN"`
	// BoardSize is the raw board slice returned for display
	BoardSize int `yaml:"board_size" json:"boardSize"`
	// CliffMargin is the working-rank gap to the next same-position
	// alternative that makes a pick safe on value alone
	CliffMargin float64 `yaml:"cliff_margin" json:"cliffMargin"`
}

// DefaultConfig mirrors the tag sets and sizes the tool shipped with
func DefaultConfig() Config {
	return Config{
		VolatileTags: []string{
			"rookie", "injury", "age", "boom_bust", "volatility",
			"off_field", "contract", "committee", "volatile",
		},
		SafeTags: []string{
			"established", "young", "usage", "role", "dual_threat",
		},
		TopN:        50,
		BoardSize:   25,
		CliffMargin: 8.0,
	}
}

// Result is the suggestion payload: both buckets ranked ascending by working
// rank plus the raw top board slice for display. Deterministic and
// order-preserving for identical inputs.
type Result struct {
	Safe  []*models.Player
	Risky []*models.Player
	Board []*models.Player
}

// Suggest partitions the best available players into SAFE and RISKY buckets
// for the requesting team. available must already be sorted ascending by
// working rank (catalog.Available does this); needed marks positions with
// open starter or flex slots.
func Suggest(available []*models.Player, needed map[models.Position]bool, cfg Config) Result {
	topN := cfg.TopN
	if topN <= 0 || topN > len(available) {
		topN = len(available)
	}
	boardSize := cfg.BoardSize
	if boardSize <= 0 || boardSize > len(available) {
		boardSize = len(available)
	}

	res := Result{Board: available[:boardSize]}
	for i, p := range available[:topN] {
		if isSafe(p, i, available, needed, cfg) {
			res.Safe = append(res.Safe, p)
		} else {
			res.Risky = append(res.Risky, p)
		}
	}
	return res
}

// isSafe applies the SAFE rules: a needed position with no net volatile tags
// and a rank built from more than one source, or a value cliff where the
// next same-position alternative is far worse.
func isSafe(p *models.Player, idx int, available []*models.Player, needed map[models.Position]bool, cfg Config) bool {
	if needed[p.Position] && !volatile(p, cfg) && !lowConfidence(p) {
		return true
	}
	return valueCliff(p, idx, available, cfg.CliffMargin)
}

// volatile nets the player's volatile tags against their safe tags
func volatile(p *models.Player, cfg Config) bool {
	risky := 0
	for _, t := range cfg.VolatileTags {
		if p.HasTag(t) {
			risky++
		}
	}
	safe := 0
	for _, t := range cfg.SafeTags {
		if p.HasTag(t) {
			safe++
		}
	}
	return risky > safe
}

// lowConfidence marks ranks derived from a single source
func lowConfidence(p *models.Player) bool {
	return p.SourceCount() == 1
}

// valueCliff reports whether the gap between this player and the next
// available player at the same position meets the margin. A player with no
// remaining same-position alternative is a cliff by definition.
func valueCliff(p *models.Player, idx int, available []*models.Player, margin float64) bool {
	if math.IsInf(p.WorkRank, 1) {
		return false
	}
	for _, q := range available[idx+1:] {
		if q.Position != p.Position {
			continue
		}
		if math.IsInf(q.WorkRank, 1) {
			return true
		}
		return q.WorkRank-p.WorkRank >= margin
	}
	return true
}
