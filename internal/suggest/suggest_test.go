package suggest

import (
	"math"
	"reflect"
	"testing"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

func intp(v int) *int { return &v }

// mkPlayer builds a player with a known working rank and source count
func mkPlayer(name string, pos models.Position, rank float64, sources int, tags ...string) *models.Player {
	p := &models.Player{Name: name, Position: pos, WorkRank: rank, RiskTags: tags}
	if sources >= 1 {
		p.ESPNRank = intp(int(rank))
	}
	if sources >= 2 {
		p.FPRank = intp(int(rank))
	}
	return p
}

func fixtureBoard() []*models.Player {
	return []*models.Player{
		mkPlayer("Safe WR", models.WR, 1.0, 2),
		mkPlayer("Rookie RB", models.RB, 2.0, 2, "rookie"),
		mkPlayer("Steady RB", models.RB, 3.0, 2),
		mkPlayer("Solo QB", models.QB, 4.0, 1),
		mkPlayer("Second QB", models.QB, 6.0, 2),
		mkPlayer("Cliff TE", models.TE, 10.0, 2),
		mkPlayer("Mid TE", models.TE, 30.0, 2),
		mkPlayer("Last TE", models.TE, 31.0, 2),
		mkPlayer("Unknown Guy", models.UNK, math.Inf(1), 0, "volatile"),
	}
}

func fixtureNeeds() map[models.Position]bool {
	return map[models.Position]bool{models.QB: true, models.RB: true, models.WR: true}
}

func names(ps []*models.Player) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestSuggestPartition(t *testing.T) {
	res := Suggest(fixtureBoard(), fixtureNeeds(), DefaultConfig())

	wantSafe := []string{"Safe WR", "Steady RB", "Second QB", "Cliff TE", "Last TE"}
	if got := names(res.Safe); !reflect.DeepEqual(got, wantSafe) {
		t.Errorf("Safe = %v, want %v", got, wantSafe)
	}
	wantRisky := []string{"Rookie RB", "Solo QB", "Mid TE", "Unknown Guy"}
	if got := names(res.Risky); !reflect.DeepEqual(got, wantRisky) {
		t.Errorf("Risky = %v, want %v", got, wantRisky)
	}
}

func TestSafeTagOffsetsVolatileTag(t *testing.T) {
	avail := []*models.Player{
		mkPlayer("Proven Rookie", models.RB, 1.0, 2, "rookie", "established"),
		mkPlayer("Next RB", models.RB, 2.0, 2),
	}
	res := Suggest(avail, map[models.Position]bool{models.RB: true}, DefaultConfig())
	if len(res.Safe) == 0 || res.Safe[0].Name != "Proven Rookie" {
		t.Errorf("a safe tag should offset the volatile tag, Safe = %v", names(res.Safe))
	}
}

func TestSingleSourceRankIsRisky(t *testing.T) {
	avail := []*models.Player{
		mkPlayer("Solo QB", models.QB, 4.0, 1),
		mkPlayer("Second QB", models.QB, 6.0, 2),
	}
	res := Suggest(avail, map[models.Position]bool{models.QB: true}, DefaultConfig())
	if got := names(res.Risky); len(got) != 1 || got[0] != "Solo QB" {
		t.Errorf("Risky = %v, want [Solo QB]", got)
	}
}

func TestValueCliffOverridesNeed(t *testing.T) {
	// TE is not needed but the drop to the next TE exceeds the margin
	avail := []*models.Player{
		mkPlayer("Cliff TE", models.TE, 10.0, 2),
		mkPlayer("Far TE", models.TE, 40.0, 2),
		mkPlayer("Filler RB", models.RB, 41.0, 2),
	}
	res := Suggest(avail, map[models.Position]bool{models.RB: true}, DefaultConfig())
	if got := names(res.Safe); len(got) == 0 || got[0] != "Cliff TE" {
		t.Errorf("Safe = %v, want Cliff TE first", got)
	}
}

func TestUnrankedPlayerNeverCliffs(t *testing.T) {
	avail := []*models.Player{
		mkPlayer("Ghost", models.UNK, math.Inf(1), 0),
	}
	res := Suggest(avail, map[models.Position]bool{}, DefaultConfig())
	if len(res.Safe) != 0 {
		t.Errorf("an unranked player must not be safe, Safe = %v", names(res.Safe))
	}
	if got := names(res.Risky); len(got) != 1 || got[0] != "Ghost" {
		t.Errorf("Risky = %v, want [Ghost]", got)
	}
}

func TestTopNAndBoardSizeLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopN = 3
	cfg.BoardSize = 2
	res := Suggest(fixtureBoard(), fixtureNeeds(), cfg)

	if got := len(res.Safe) + len(res.Risky); got != 3 {
		t.Errorf("partitioned %d candidates, want TopN=3", got)
	}
	if len(res.Board) != 2 {
		t.Errorf("Board length = %d, want 2", len(res.Board))
	}
}

func TestSuggestDeterministic(t *testing.T) {
	a := Suggest(fixtureBoard(), fixtureNeeds(), DefaultConfig())
	b := Suggest(fixtureBoard(), fixtureNeeds(), DefaultConfig())
	if !reflect.DeepEqual(names(a.Safe), names(b.Safe)) || !reflect.DeepEqual(names(a.Risky), names(b.Risky)) {
		t.Error("identical inputs must produce identical buckets")
	}
}
