package draft

import (
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/catalog"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// State is the lifecycle of a draft session
type State int

const (
	NotStarted State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Turn locates one entry of the snake pick sequence
type Turn struct {
	Round       int
	SlotInRound int
	Overall     int
	TeamSlot    int
}

// Roster is one team's drafted players, bucketed by position in pick order
type Roster struct {
	Picks      []string                       // player keys in the order drafted
	ByPosition map[models.Position][]string
}

func newRoster() *Roster {
	return &Roster{ByPosition: make(map[models.Position][]string)}
}

// Engine owns all mutable draft state: the snake pick sequence, the taken
// set, per-team rosters, and the pick history used for undo. Every command
// validates fully before mutating, so a failed command leaves no trace.
type Engine struct {
	cfg     models.DraftConfig
	slots   models.RosterSlots
	cat     *catalog.Catalog
	order   []Turn
	picks   []models.PickRecord
	taken   map[string]models.PickRecord
	rosters map[int]*Roster
	pointer int
	state   State
}

// SnakeOrder builds the full pick sequence: within odd rounds teams pick in
// ascending slot order 1..T, within even rounds descending T..1.
func SnakeOrder(teams, rounds int) []Turn {
	order := make([]Turn, 0, teams*rounds)
	overall := 1
	for rnd := 1; rnd <= rounds; rnd++ {
		for i := 1; i <= teams; i++ {
			slot := i
			if rnd%2 == 0 {
				slot = teams - i + 1
			}
			order = append(order, Turn{
				Round:       rnd,
				SlotInRound: i,
				Overall:     overall,
				TeamSlot:    slot,
			})
			overall++
		}
	}
	return order
}

// Start validates the config and returns an in-progress engine. The config
// is immutable once the draft begins.
func Start(cfg models.DraftConfig, slots models.RosterSlots, cat *catalog.Catalog) (*Engine, error) {
	if cfg.Teams < 2 {
		return nil, &InvalidConfigError{Field: "teams", Value: cfg.Teams}
	}
	if cfg.Rounds < 1 {
		return nil, &InvalidConfigError{Field: "rounds", Value: cfg.Rounds}
	}
	if cfg.Slot < 1 || cfg.Slot > cfg.Teams {
		return nil, &InvalidConfigError{Field: "slot", Value: cfg.Slot}
	}
	e := &Engine{
		cfg:     cfg,
		slots:   slots.Clone(),
		cat:     cat,
		order:   SnakeOrder(cfg.Teams, cfg.Rounds),
		taken:   make(map[string]models.PickRecord),
		rosters: make(map[int]*Roster),
		state:   InProgress,
	}
	for slot := 1; slot <= cfg.Teams; slot++ {
		e.rosters[slot] = newRoster()
	}
	return e, nil
}

// CurrentTurn reports whose pick is on the clock
func (e *Engine) CurrentTurn() (Turn, error) {
	if e.state == Complete || e.pointer >= len(e.order) {
		return Turn{}, &DraftCompleteError{}
	}
	return e.order[e.pointer], nil
}

// RecordPick records a pick of the named player. teamSlot 0 means the team
// on the clock. Unknown names auto-create an unranked placeholder so the
// draft keeps moving; a taken player is an error and nothing changes.
func (e *Engine) RecordPick(name string, teamSlot int) (models.PickRecord, *models.Player, error) {
	turn, err := e.CurrentTurn()
	if err != nil {
		return models.PickRecord{}, nil, err
	}
	if teamSlot == 0 {
		teamSlot = turn.TeamSlot
	}
	if teamSlot < 1 || teamSlot > e.cfg.Teams {
		return models.PickRecord{}, nil, &InvalidConfigError{Field: "teamSlot", Value: teamSlot}
	}

	p, ok := e.cat.Resolve(name)
	if !ok {
		p = e.cat.CreatePlaceholder(name)
	}
	key := catalog.Normalize(p.Name)
	if prior, gone := e.taken[key]; gone {
		return models.PickRecord{}, nil, &AlreadyTakenError{
			Name:     p.Name,
			TeamSlot: prior.TeamSlot,
			Overall:  prior.Overall,
		}
	}

	rec := models.PickRecord{
		Overall:     turn.Overall,
		Round:       turn.Round,
		SlotInRound: turn.SlotInRound,
		TeamSlot:    teamSlot,
		PlayerKey:   key,
	}
	e.picks = append(e.picks, rec)
	e.taken[key] = rec
	roster := e.rosters[teamSlot]
	roster.Picks = append(roster.Picks, key)
	roster.ByPosition[p.Position] = append(roster.ByPosition[p.Position], key)
	e.pointer++
	if e.pointer == len(e.order) {
		e.state = Complete
	}
	return rec, p, nil
}

// Undo pops the most recent pick and reverses every effect it had. A
// completed draft reopens. Placeholder records stay in the catalog; the
// catalog never removes entries.
func (e *Engine) Undo() (models.PickRecord, error) {
	if len(e.picks) == 0 {
		return models.PickRecord{}, &NoHistoryError{}
	}
	last := e.picks[len(e.picks)-1]
	e.picks = e.picks[:len(e.picks)-1]
	delete(e.taken, last.PlayerKey)

	roster := e.rosters[last.TeamSlot]
	roster.Picks = roster.Picks[:len(roster.Picks)-1]
	if p, ok := e.cat.Lookup(last.PlayerKey); ok {
		bucket := roster.ByPosition[p.Position]
		for i := len(bucket) - 1; i >= 0; i-- {
			if bucket[i] == last.PlayerKey {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(roster.ByPosition, p.Position)
		} else {
			roster.ByPosition[p.Position] = bucket
		}
	}

	e.pointer--
	if e.state == Complete {
		e.state = InProgress
	}
	return last, nil
}

// State reports the engine lifecycle state
func (e *Engine) State() State { return e.state }

// Config returns the immutable draft parameters
func (e *Engine) Config() models.DraftConfig { return e.cfg }

// Slots returns a copy of the starter slot targets
func (e *Engine) Slots() models.RosterSlots { return e.slots.Clone() }

// Catalog exposes the player catalog backing this draft
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Picks returns a copy of the pick history in order
func (e *Engine) Picks() []models.PickRecord {
	out := make([]models.PickRecord, len(e.picks))
	copy(out, e.picks)
	return out
}

// Taken returns a copy of the taken set keyed by player key
func (e *Engine) Taken() map[string]models.PickRecord {
	out := make(map[string]models.PickRecord, len(e.taken))
	for k, v := range e.taken {
		out[k] = v
	}
	return out
}

// Roster returns the roster for a team slot, nil if the slot is out of range
func (e *Engine) Roster(teamSlot int) *Roster {
	return e.rosters[teamSlot]
}

// Pointer is the index of the next pick in the snake sequence
func (e *Engine) Pointer() int { return e.pointer }

// TotalPicks is teams multiplied by rounds
func (e *Engine) TotalPicks() int { return len(e.order) }

// NextTurnFor finds the next turn in the sequence belonging to a team other
// than skipSlot, starting from the current pointer. Used by the CLI's
// "other" command when the caller is on the clock. ok is false when every
// remaining turn belongs to skipSlot.
func (e *Engine) NextTurnFor(skipSlot int) (Turn, bool) {
	for i := e.pointer; i < len(e.order); i++ {
		if e.order[i].TeamSlot != skipSlot {
			return e.order[i], true
		}
	}
	return Turn{}, false
}
