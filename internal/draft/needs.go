package draft

import (
	"fmt"
	"strings"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// slotOrder fixes the display order of needs reports
var slotOrder = []string{
	string(models.QB), string(models.RB), string(models.WR),
	string(models.TE), models.FlexPosition, string(models.K), string(models.DST),
}

// StarterAssignment labels which starter slot each rostered player fills,
// in pick order. Slot is empty for bench players.
type StarterAssignment struct {
	PlayerKey string
	Position  models.Position
	Slot      string
}

// AssignStarters fills fixed position slots first in pick order, then FLEX
// from the remaining RB/WR/TE.
func (e *Engine) AssignStarters(teamSlot int) []StarterAssignment {
	roster := e.rosters[teamSlot]
	if roster == nil {
		return nil
	}
	out := make([]StarterAssignment, 0, len(roster.Picks))
	for _, key := range roster.Picks {
		pos := models.UNK
		if p, ok := e.cat.Lookup(key); ok {
			pos = p.Position
		}
		out = append(out, StarterAssignment{PlayerKey: key, Position: pos})
	}

	for _, pos := range []models.Position{models.QB, models.RB, models.WR, models.TE, models.K, models.DST} {
		need := e.slots[string(pos)]
		filled := 0
		for i := range out {
			if filled >= need {
				break
			}
			if out[i].Position == pos && out[i].Slot == "" {
				out[i].Slot = string(pos)
				filled++
			}
		}
	}

	flexNeed := e.slots[models.FlexPosition]
	filledFlex := 0
	for i := range out {
		if filledFlex >= flexNeed {
			break
		}
		if out[i].Slot == "" && out[i].Position.FlexEligible() {
			out[i].Slot = models.FlexPosition
			filledFlex++
		}
	}
	return out
}

// Needs reports how many starters remain to be filled per slot label
func (e *Engine) Needs(teamSlot int) map[string]int {
	assigned := e.AssignStarters(teamSlot)
	have := make(map[string]int)
	for _, a := range assigned {
		if a.Slot != "" {
			have[a.Slot]++
		}
	}
	need := make(map[string]int, len(e.slots))
	for slot, req := range e.slots {
		remain := req - have[slot]
		if remain < 0 {
			remain = 0
		}
		need[slot] = remain
	}
	return need
}

// NeededPositions marks positions still worth drafting for a team: any
// position with open starter slots, plus flex-eligible positions while the
// FLEX slot is open.
func (e *Engine) NeededPositions(teamSlot int) map[models.Position]bool {
	need := e.Needs(teamSlot)
	out := make(map[models.Position]bool)
	for _, pos := range []models.Position{models.QB, models.RB, models.WR, models.TE, models.K, models.DST} {
		if need[string(pos)] > 0 {
			out[pos] = true
		} else if pos.FlexEligible() && need[models.FlexPosition] > 0 {
			out[pos] = true
		}
	}
	return out
}

// NeedsString renders a needs map like "RB:1, FLEX:1" in a fixed slot order
func NeedsString(need map[string]int) string {
	var parts []string
	for _, slot := range slotOrder {
		if remain, ok := need[slot]; ok && remain > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", slot, remain))
		}
	}
	if len(parts) == 0 {
		return "All starters filled"
	}
	return strings.Join(parts, ", ")
}
