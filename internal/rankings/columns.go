package rankings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// columnIndex maps rankings columns to their position in the header row.
// -1 means the column is absent from this file.
type columnIndex struct {
	name      int
	team      int
	pos       int
	bye       int
	espn      int
	fp        int
	ds        int
	consensus int
	tags      int
	tier      int
	notes     int
}

// normalizeHeader folds a header cell to a comparable key: lower-cased with
// spaces, underscores, dashes, and slashes stripped
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '/', '.':
			return -1
		}
		return r
	}, s)
}

// headerAliases tolerates the column spellings seen across exported sheets
var headerAliases = map[string]string{
	"player":        "name",
	"playername":    "name",
	"name":          "name",
	"team":          "team",
	"nflteam":       "team",
	"tm":            "team",
	"pos":           "pos",
	"position":      "pos",
	"bye":           "bye",
	"byeweek":       "bye",
	"espnclayrank":  "espn",
	"espnrank":      "espn",
	"espn":          "espn",
	"fpecrrank":     "fp",
	"fprank":        "fp",
	"fantasypros":   "fp",
	"ecr":           "fp",
	"dsrank":        "ds",
	"draftsharks":   "ds",
	"consensusrank": "consensus",
	"consensus":     "consensus",
	"risktag":       "tags",
	"risktags":      "tags",
	"tags":          "tags",
	"tier":          "tier",
	"notes":         "notes",
}

// buildIndex maps a header row; the player name column is required
func buildIndex(headers []string) (columnIndex, error) {
	idx := columnIndex{
		name: -1, team: -1, pos: -1, bye: -1, espn: -1, fp: -1,
		ds: -1, consensus: -1, tags: -1, tier: -1, notes: -1,
	}
	for i, h := range headers {
		field, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		switch field {
		case "name":
			idx.name = i
		case "team":
			idx.team = i
		case "pos":
			idx.pos = i
		case "bye":
			idx.bye = i
		case "espn":
			idx.espn = i
		case "fp":
			idx.fp = i
		case "ds":
			idx.ds = i
		case "consensus":
			idx.consensus = i
		case "tags":
			idx.tags = i
		case "tier":
			idx.tier = i
		case "notes":
			idx.notes = i
		}
	}
	if idx.name < 0 {
		return idx, fmt.Errorf("rankings file has no player name column")
	}
	return idx, nil
}

// cell returns a trimmed cell value, empty when the column is absent or the
// row is short
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRank reads an optional rank cell. Empty or unparseable cells are
// absent, not zero.
func parseRank(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// exports sometimes write ranks as floats
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		v := int(f)
		return &v
	}
	return nil
}

// rowToPlayer builds a record from one data row; ok is false for rows with
// no player name
func rowToPlayer(row []string, idx columnIndex) (models.Player, bool) {
	name := cell(row, idx.name)
	if name == "" {
		return models.Player{}, false
	}
	p := models.Player{
		Name:      name,
		Position:  models.ParsePosition(cell(row, idx.pos)),
		Team:      strings.ToUpper(cell(row, idx.team)),
		Bye:       cell(row, idx.bye),
		ESPNRank:  parseRank(cell(row, idx.espn)),
		FPRank:    parseRank(cell(row, idx.fp)),
		DSRank:    parseRank(cell(row, idx.ds)),
		Consensus: parseRank(cell(row, idx.consensus)),
		Tier:      cell(row, idx.tier),
		Notes:     cell(row, idx.notes),
	}
	if tags := cell(row, idx.tags); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				p.RiskTags = append(p.RiskTags, t)
			}
		}
	}
	return p, true
}
