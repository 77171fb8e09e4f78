package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/catalog"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/draft"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// Version is the snapshot schema version
const Version = 1

// CorruptSnapshotError reports snapshot bytes that cannot rebuild a draft.
// Unmarshal never partially mutates caller state: it builds a fresh engine
// and hands it over only on success.
type CorruptSnapshotError struct {
	Reason string
	Err    error
}

func (e *CorruptSnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt snapshot: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt snapshot: %s", e.Reason)
}

func (e *CorruptSnapshotError) Unwrap() error { return e.Err }

// Snapshot is the persisted representation of a draft session. Working
// ranks are not stored; they are recomputed from the source ranks on load.
type Snapshot struct {
	Version     int                 `json:"version"`
	SessionID   string              `json:"sessionId"`
	SavedAt     time.Time           `json:"savedAt"`
	Config      models.DraftConfig  `json:"config"`
	RosterSlots models.RosterSlots  `json:"rosterSlots"`
	Players     []models.Player     `json:"players"` // full catalog, insertion order
	Picks       []models.PickRecord `json:"picks"`
	Pointer     int                 `json:"pointer"`
}

// NewSessionID mints the identifier a draft session saves under
func NewSessionID() string {
	return uuid.NewString()
}

// Marshal serializes the engine's full state
func Marshal(e *draft.Engine, sessionID string) ([]byte, error) {
	players := e.Catalog().Players()
	snap := Snapshot{
		Version:     Version,
		SessionID:   sessionID,
		SavedAt:     time.Now().UTC(),
		Config:      e.Config(),
		RosterSlots: e.Slots(),
		Players:     make([]models.Player, 0, len(players)),
		Picks:       e.Picks(),
		Pointer:     e.Pointer(),
	}
	for _, p := range players {
		snap.Players = append(snap.Players, *p)
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Unmarshal rebuilds an engine by reloading the catalog and replaying the
// pick history through the normal pick path, so every invariant the engine
// enforces live is enforced on restore too.
func Unmarshal(data []byte) (*draft.Engine, string, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, "", &CorruptSnapshotError{Reason: "not valid JSON", Err: err}
	}
	if snap.Version != Version {
		return nil, "", &CorruptSnapshotError{Reason: fmt.Sprintf("unsupported version %d", snap.Version)}
	}
	if snap.Pointer != len(snap.Picks) {
		return nil, "", &CorruptSnapshotError{
			Reason: fmt.Sprintf("pointer %d does not match %d picks", snap.Pointer, len(snap.Picks)),
		}
	}

	cat := catalog.New()
	cat.Load(snap.Players)

	eng, err := draft.Start(snap.Config, snap.RosterSlots, cat)
	if err != nil {
		return nil, "", &CorruptSnapshotError{Reason: "invalid config", Err: err}
	}

	for _, rec := range snap.Picks {
		if _, ok := cat.Lookup(rec.PlayerKey); !ok {
			return nil, "", &CorruptSnapshotError{
				Reason: fmt.Sprintf("pick #%d references unknown player %q", rec.Overall, rec.PlayerKey),
			}
		}
		replayed, _, err := eng.RecordPick(rec.PlayerKey, rec.TeamSlot)
		if err != nil {
			return nil, "", &CorruptSnapshotError{
				Reason: fmt.Sprintf("replaying pick #%d (%s)", rec.Overall, rec.PlayerKey),
				Err:    err,
			}
		}
		if replayed.Overall != rec.Overall || replayed.Round != rec.Round {
			return nil, "", &CorruptSnapshotError{
				Reason: fmt.Sprintf("pick #%d is out of sequence", rec.Overall),
			}
		}
	}
	return eng, snap.SessionID, nil
}
