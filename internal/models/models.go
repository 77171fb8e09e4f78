package models

import "strings"

// Position is a fantasy roster position
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
	// UNK marks placeholder players added live whose position is not known yet
	UNK Position = "UNK"
)

// FlexPosition labels the RB/WR/TE flex starter slot in roster configs and
// needs reports. It is never a player's own position.
const FlexPosition = "FLEX"

// ParsePosition maps free-text position strings to a Position, defaulting to UNK
func ParsePosition(s string) Position {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "QB":
		return QB
	case "RB":
		return RB
	case "WR":
		return WR
	case "TE":
		return TE
	case "K", "PK":
		return K
	case "DST", "DEF", "D/ST":
		return DST
	default:
		return UNK
	}
}

// FlexEligible reports whether the position may fill a FLEX starter slot
func (p Position) FlexEligible() bool {
	return p == RB || p == WR || p == TE
}

// Player represents one row of the rankings table plus live-draft metadata.
// Source ranks are pointers: a missing column is absent, not zero.
type Player struct {
	Name      string   `json:"name"`
	Position  Position `json:"position"`
	Team      string   `json:"team"`
	Bye       string   `json:"bye,omitempty"`
	ESPNRank  *int     `json:"espnRank,omitempty"`
	FPRank    *int     `json:"fpRank,omitempty"`
	DSRank    *int     `json:"dsRank,omitempty"`
	Consensus *int     `json:"consensusRank,omitempty"`
	Tier      string   `json:"tier,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	RiskTags  []string `json:"riskTags,omitempty"`

	// WorkRank is derived from the source ranks and never serialized;
	// the catalog recomputes it whenever a source rank changes.
	WorkRank float64 `json:"-"`
}

// SourceCount returns how many of the three per-source ranks are present
func (p *Player) SourceCount() int {
	n := 0
	for _, r := range []*int{p.ESPNRank, p.FPRank, p.DSRank} {
		if r != nil {
			n++
		}
	}
	return n
}

// HasTag reports whether the player carries the given risk tag
func (p *Player) HasTag(tag string) bool {
	for _, t := range p.RiskTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// DraftConfig holds the immutable parameters of a draft session
type DraftConfig struct {
	Teams  int    `json:"teams"`
	Slot   int    `json:"slot"` // the caller's draft slot, 1-based
	Rounds int    `json:"rounds"`
	Format string `json:"format"` // ppr, half, or std; informational only
}

// RosterSlots maps slot labels (position names plus FLEX) to starter counts
type RosterSlots map[string]int

// Clone returns an independent copy of the slot map
func (r RosterSlots) Clone() RosterSlots {
	out := make(RosterSlots, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// PickRecord is one entry of the append-only pick history
type PickRecord struct {
	Overall     int    `json:"overall"` // 1-based, monotonic
	Round       int    `json:"round"`
	SlotInRound int    `json:"slotInRound"`
	TeamSlot    int    `json:"teamSlot"` // 1-based draft slot of the owning team
	PlayerKey   string `json:"playerKey"`
}
