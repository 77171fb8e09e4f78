package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	safeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	riskyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	mineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

// printablePlayer renders one player line: name, team, position, bye, tags
func printablePlayer(p *models.Player) string {
	parts := []string{p.Name}
	if p.Team != "" {
		parts = append(parts, p.Team)
	}
	if p.Position != "" {
		parts = append(parts, string(p.Position))
	}
	if p.Bye != "" {
		parts = append(parts, "Bye "+p.Bye)
	}
	if len(p.RiskTags) > 0 {
		parts = append(parts, "["+strings.Join(p.RiskTags, ",")+"]")
	}
	return strings.Join(parts, " ")
}

func renderPlayerList(players []*models.Player) string {
	var b strings.Builder
	for i, p := range players {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, printablePlayer(p))
	}
	if b.Len() == 0 {
		return dimStyle.Render("(none)") + "\n"
	}
	return b.String()
}

func renderSuggest(res *SuggestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf(
		"On clock: Team %d  (Round %d, Overall #%d)",
		res.Turn.TeamSlot, res.Turn.Round, res.Turn.Overall)))
	if res.MyTurn {
		b.WriteString(mineStyle.Render("It's YOUR pick.") + "\n")
	}
	fmt.Fprintf(&b, "Your Roster Needs: %s\n", res.NeedsLine)

	b.WriteString(safeStyle.Render("SAFE") + "\n")
	b.WriteString(renderPlayerList(topOf(res.Buckets.Safe, 5)))
	b.WriteString(riskyStyle.Render("RISKY") + "\n")
	b.WriteString(renderPlayerList(topOf(res.Buckets.Risky, 5)))

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Top-%d board:", len(res.Buckets.Board))))
	b.WriteString(renderPlayerList(res.Buckets.Board))
	return b.String()
}

func topOf(players []*models.Player, n int) []*models.Player {
	if n > 0 && n < len(players) {
		return players[:n]
	}
	return players
}

func renderRosters(rosters []TeamRoster, full bool) string {
	var b strings.Builder
	if full {
		b.WriteString(titleStyle.Render("=== Draft Board Snapshot ===") + "\n")
	}
	for _, tr := range rosters {
		label := fmt.Sprintf("Team %d:", tr.Slot)
		if tr.Mine {
			b.WriteString(mineStyle.Render(label+" (you)") + "\n")
		} else {
			b.WriteString(titleStyle.Render(label) + "\n")
		}
		if len(tr.Players) == 0 {
			b.WriteString(dimStyle.Render("  (empty)") + "\n")
			continue
		}
		for _, p := range tr.Players {
			fmt.Fprintf(&b, "  - %s\n", printablePlayer(p))
		}
	}
	return b.String()
}

func renderNeeds(needs []TeamNeeds) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("=== Roster Needs (starters remaining) ===") + "\n")
	for _, tn := range needs {
		fmt.Fprintf(&b, "Team %d: %s\n", tn.Slot, tn.Line)
	}
	return b.String()
}
