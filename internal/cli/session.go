package cli

import (
	"fmt"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/catalog"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/config"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/draft"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/snapshot"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/suggest"
)

// Session binds one draft to its snapshot store and policy config. Every
// REPL command maps to one method returning a structured result; rendering
// happens elsewhere.
type Session struct {
	Engine    *draft.Engine
	Store     snapshot.Store
	Cfg       *config.Config
	SessionID string
}

// NewSession starts a session for an engine that is already in progress
func NewSession(eng *draft.Engine, store snapshot.Store, cfg *config.Config) *Session {
	return &Session{
		Engine:    eng,
		Store:     store,
		Cfg:       cfg,
		SessionID: snapshot.NewSessionID(),
	}
}

// SuggestResult is the payload of the suggest command
type SuggestResult struct {
	Turn      draft.Turn
	MyTurn    bool
	NeedsLine string
	Buckets   suggest.Result
}

// Suggest builds the SAFE/RISKY recommendation for the caller's team
func (s *Session) Suggest() (*SuggestResult, error) {
	turn, err := s.Engine.CurrentTurn()
	if err != nil {
		return nil, err
	}
	me := s.Engine.Config().Slot
	avail := s.Engine.Catalog().Available(s.Engine.Taken())
	needed := s.Engine.NeededPositions(me)
	return &SuggestResult{
		Turn:      turn,
		MyTurn:    turn.TeamSlot == me,
		NeedsLine: draft.NeedsString(s.Engine.Needs(me)),
		Buckets:   suggest.Suggest(avail, needed, s.Cfg.Suggest),
	}, nil
}

// Board returns the top n available players by working rank
func (s *Session) Board(n int) []*models.Player {
	avail := s.Engine.Catalog().Available(s.Engine.Taken())
	if n > 0 && n < len(avail) {
		avail = avail[:n]
	}
	return avail
}

// TeamRoster is one team's drafted players for display
type TeamRoster struct {
	Slot    int
	Mine    bool
	Players []*models.Player
}

// Rosters returns every team's roster in slot order
func (s *Session) Rosters() []TeamRoster {
	cfg := s.Engine.Config()
	out := make([]TeamRoster, 0, cfg.Teams)
	for slot := 1; slot <= cfg.Teams; slot++ {
		tr := TeamRoster{Slot: slot, Mine: slot == cfg.Slot}
		for _, key := range s.Engine.Roster(slot).Picks {
			if p, ok := s.Engine.Catalog().Lookup(key); ok {
				tr.Players = append(tr.Players, p)
			}
		}
		out = append(out, tr)
	}
	return out
}

// TeamNeeds is one team's remaining-starters line
type TeamNeeds struct {
	Slot int
	Line string
}

// NeedsAll reports remaining starters for every team
func (s *Session) NeedsAll() []TeamNeeds {
	cfg := s.Engine.Config()
	out := make([]TeamNeeds, 0, cfg.Teams)
	for slot := 1; slot <= cfg.Teams; slot++ {
		out = append(out, TeamNeeds{
			Slot: slot,
			Line: draft.NeedsString(s.Engine.Needs(slot)),
		})
	}
	return out
}

// Find searches available players by substring
func (s *Session) Find(query string) []*models.Player {
	taken := s.Engine.Taken()
	var hits []*models.Player
	for _, p := range s.Engine.Catalog().Find(query) {
		if _, gone := taken[catalog.Normalize(p.Name)]; !gone {
			hits = append(hits, p)
		}
	}
	return hits
}

// PickMine records a pick for the caller's slot
func (s *Session) PickMine(name string) (models.PickRecord, *models.Player, error) {
	return s.Engine.RecordPick(name, s.Engine.Config().Slot)
}

// PickOther records a pick for the team on the clock; when the caller is on
// the clock it books the pick to the next team in the order instead.
func (s *Session) PickOther(name string) (models.PickRecord, *models.Player, error) {
	turn, err := s.Engine.CurrentTurn()
	if err != nil {
		return models.PickRecord{}, nil, err
	}
	me := s.Engine.Config().Slot
	team := turn.TeamSlot
	if team == me {
		if next, ok := s.Engine.NextTurnFor(me); ok {
			team = next.TeamSlot
		}
	}
	return s.Engine.RecordPick(name, team)
}

// SetRank updates one source rank live
func (s *Session) SetRank(source, name string, value int) (*models.Player, error) {
	src, ok := catalog.ParseSource(source)
	if !ok {
		return nil, fmt.Errorf("unknown rank source %q (valid: espn, fp, ds, consensus)", source)
	}
	return s.Engine.Catalog().SetSourceRank(name, src, value)
}

// Tag replaces a player's risk tags
func (s *Session) Tag(name string, tags []string) (*models.Player, error) {
	return s.Engine.Catalog().SetTags(name, tags)
}

// Add inserts a player missing from the rankings table
func (s *Session) Add(name, pos, team string, rank int) (*models.Player, error) {
	return s.Engine.Catalog().AddPlayer(name, models.ParsePosition(pos), team, rank)
}

// Undo reverses the most recent pick
func (s *Session) Undo() (models.PickRecord, error) {
	return s.Engine.Undo()
}

// Save snapshots the full draft state. A non-empty path overrides the
// configured store with a flat file at that path.
func (s *Session) Save(path string) (string, error) {
	data, err := snapshot.Marshal(s.Engine, s.SessionID)
	if err != nil {
		return "", err
	}
	store := s.Store
	if path != "" {
		store = snapshot.NewFileStore(path)
	}
	return store.Save(s.SessionID, data)
}

// Load restores a snapshot, replacing the session's draft only on success.
// A non-empty path reads a flat file; otherwise the configured store's most
// recent snapshot for this session is used.
func (s *Session) Load(path string) error {
	store := s.Store
	sessionID := s.SessionID
	if path != "" {
		store = snapshot.NewFileStore(path)
		sessionID = ""
	}
	data, err := store.Load(sessionID)
	if err != nil {
		return err
	}
	eng, sessionID, err := snapshot.Unmarshal(data)
	if err != nil {
		return err
	}
	s.Engine = eng
	if sessionID != "" {
		s.SessionID = sessionID
	}
	return nil
}
