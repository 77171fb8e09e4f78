package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/catalog"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/config"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/draft"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/snapshot"
)

func intp(v int) *int { return &v }

func testSession(t *testing.T) *Session {
	t.Helper()
	cat := catalog.New()
	cat.Load([]models.Player{
		{Name: "Ja'Marr Chase", Position: models.WR, Consensus: intp(1)},
		{Name: "Bijan Robinson", Position: models.RB, Consensus: intp(2)},
		{Name: "Justin Jefferson", Position: models.WR, Consensus: intp(3)},
		{Name: "Josh Allen", Position: models.QB, Consensus: intp(4)},
		{Name: "Brock Bowers", Position: models.TE, Consensus: intp(5)},
	})
	cfg := config.Default()
	eng, err := draft.Start(models.DraftConfig{Teams: 4, Slot: 1, Rounds: 3, Format: "ppr"}, cfg.Slots(), cat)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "draft_state.json"))
	return NewSession(eng, store, cfg)
}

func TestEvalQuitAndHelp(t *testing.T) {
	s := testSession(t)
	if out, quit := s.Eval("quit"); !quit || out != "Bye" {
		t.Errorf("quit = (%q, %v)", out, quit)
	}
	if out, quit := s.Eval("EXIT"); !quit || out != "Bye" {
		t.Errorf("EXIT = (%q, %v)", out, quit)
	}
	if out, _ := s.Eval("help"); !strings.Contains(out, "Commands:") {
		t.Errorf("help = %q", out)
	}
	if out, _ := s.Eval("frobnicate"); !strings.Contains(out, "Unknown command") {
		t.Errorf("unknown = %q", out)
	}
	if out, quit := s.Eval("   "); out != "" || quit {
		t.Errorf("blank line = (%q, %v)", out, quit)
	}
}

func TestEvalPickAndUndo(t *testing.T) {
	s := testSession(t)

	out, _ := s.Eval(`me "Bijan Robinson"`)
	if !strings.Contains(out, "Recorded pick #1") || !strings.Contains(out, "Bijan Robinson") {
		t.Errorf("me = %q", out)
	}
	if s.Engine.Pointer() != 1 {
		t.Errorf("pointer = %d, want 1", s.Engine.Pointer())
	}

	// the same player again is rejected and nothing moves
	out, _ = s.Eval(`other "Bijan Robinson"`)
	if !strings.Contains(out, "already taken") {
		t.Errorf("duplicate pick = %q", out)
	}
	if s.Engine.Pointer() != 1 {
		t.Errorf("pointer moved on failed pick: %d", s.Engine.Pointer())
	}

	out, _ = s.Eval("undo")
	if !strings.Contains(out, "Undid pick #1") {
		t.Errorf("undo = %q", out)
	}
	if s.Engine.Pointer() != 0 {
		t.Errorf("pointer = %d after undo, want 0", s.Engine.Pointer())
	}

	out, _ = s.Eval("undo")
	if !strings.Contains(out, "no picks") {
		t.Errorf("undo on empty history = %q", out)
	}
}

func TestEvalOtherSkipsMySlotOnMyTurn(t *testing.T) {
	s := testSession(t)
	// pick 1 belongs to my team (slot 1); "other" must book the next team
	out, _ := s.Eval(`other "Ja'Marr Chase"`)
	if !strings.Contains(out, "Team 2") {
		t.Errorf("other = %q, want the pick booked to Team 2", out)
	}
}

func TestEvalPickBySubstring(t *testing.T) {
	s := testSession(t)
	out, _ := s.Eval("me jefferson")
	if !strings.Contains(out, "Justin Jefferson") {
		t.Errorf("substring pick = %q", out)
	}
}

func TestEvalAdd(t *testing.T) {
	s := testSession(t)

	out, _ := s.Eval(`add "Joe Random" RB KC 120`)
	if !strings.Contains(out, "Added Joe Random") || !strings.Contains(out, "120") {
		t.Errorf("add = %q", out)
	}
	p, ok := s.Engine.Catalog().Lookup("Joe Random")
	if !ok || p.Position != models.RB || p.Team != "KC" {
		t.Errorf("added player = %+v", p)
	}

	out, _ = s.Eval(`add "Late Flier" WR`)
	if !strings.Contains(out, "1500") {
		t.Errorf("default rank add = %q", out)
	}

	out, _ = s.Eval(`add "Joe Random" RB`)
	if !strings.Contains(out, "already exists") {
		t.Errorf("duplicate add = %q", out)
	}

	out, _ = s.Eval("add Joe Random RB")
	if !strings.Contains(out, "Usage:") {
		t.Errorf("unquoted add = %q", out)
	}
}

func TestEvalSetRankAndTag(t *testing.T) {
	s := testSession(t)

	out, _ := s.Eval(`setrank espn "Josh Allen" 3`)
	if !strings.Contains(out, "Set espn rank for Josh Allen to 3") {
		t.Errorf("setrank = %q", out)
	}
	p, _ := s.Engine.Catalog().Lookup("Josh Allen")
	if p.ESPNRank == nil || *p.ESPNRank != 3 {
		t.Errorf("espn rank = %v", p.ESPNRank)
	}

	out, _ = s.Eval(`setrank vibes "Josh Allen" 3`)
	if !strings.Contains(out, "unknown rank source") {
		t.Errorf("bad source = %q", out)
	}

	out, _ = s.Eval(`tag "Josh Allen" Injury, dual_threat`)
	if !strings.Contains(out, "Updated risk tags") {
		t.Errorf("tag = %q", out)
	}
	if !p.HasTag("injury") || !p.HasTag("dual_threat") {
		t.Errorf("tags = %v", p.RiskTags)
	}

	out, _ = s.Eval(`tag "Nobody Here" rookie`)
	if !strings.Contains(out, "not found") {
		t.Errorf("tag missing player = %q", out)
	}
}

func TestEvalSuggestBoardAndNeeds(t *testing.T) {
	s := testSession(t)

	out, _ := s.Eval("suggest")
	if !strings.Contains(out, "On clock: Team 1") || !strings.Contains(out, "YOUR pick") {
		t.Errorf("suggest = %q", out)
	}

	out, _ = s.Eval("board")
	if !strings.Contains(out, "Ja'Marr Chase") {
		t.Errorf("board = %q", out)
	}

	out, _ = s.Eval("needs")
	if !strings.Contains(out, "Team 1") {
		t.Errorf("needs = %q", out)
	}

	out, _ = s.Eval("find jeff")
	if !strings.Contains(out, "Justin Jefferson") {
		t.Errorf("find = %q", out)
	}
	out, _ = s.Eval("find zzz")
	if !strings.Contains(out, "No matches") {
		t.Errorf("find miss = %q", out)
	}
}

func TestEvalSaveAndLoad(t *testing.T) {
	s := testSession(t)
	path := filepath.Join(t.TempDir(), "mid_draft.json")

	s.Eval(`me "Ja'Marr Chase"`)
	out, _ := s.Eval("save " + path)
	if !strings.Contains(out, "Saved -> "+path) {
		t.Errorf("save = %q", out)
	}

	s.Eval(`other "Bijan Robinson"`)
	if s.Engine.Pointer() != 2 {
		t.Fatalf("pointer = %d, want 2", s.Engine.Pointer())
	}

	out, _ = s.Eval("load " + path)
	if !strings.Contains(out, "Restored draft at pick #2") {
		t.Errorf("load = %q", out)
	}
	if s.Engine.Pointer() != 1 {
		t.Errorf("pointer = %d after restore, want 1", s.Engine.Pointer())
	}
	if _, gone := s.Engine.Taken()["bijan robinson"]; gone {
		t.Error("restore should roll back the pick made after the save")
	}
}

func TestLoadWithoutPathScopedToSession(t *testing.T) {
	store := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "history.sqlite"))

	s := testSession(t)
	s.Store = store
	s.Eval(`me "Ja'Marr Chase"`)
	if _, err := s.Save(""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// a different session saves later into the same database
	other := testSession(t)
	other.Store = store
	other.Eval(`me "Josh Allen"`)
	other.Eval(`other "Bijan Robinson"`)
	if _, err := other.Save(""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s.Eval(`other "Justin Jefferson"`)
	if err := s.Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Engine.Pointer() != 1 {
		t.Errorf("pointer = %d, want this session's one-pick save", s.Engine.Pointer())
	}
	if _, gone := s.Engine.Taken()["josh allen"]; gone {
		t.Error("restore pulled another session's snapshot")
	}
	if _, gone := s.Engine.Taken()["ja'marr chase"]; !gone {
		t.Error("restore lost this session's pick")
	}
}

func TestEvalLoadCorruptLeavesSessionIntact(t *testing.T) {
	s := testSession(t)
	s.Eval(`me "Ja'Marr Chase"`)

	path := filepath.Join(t.TempDir(), "garbage.json")
	out, _ := s.Eval("load " + path)
	if !strings.Contains(out, "failed to read snapshot") {
		t.Errorf("load missing = %q", out)
	}
	if s.Engine.Pointer() != 1 {
		t.Errorf("failed load must not touch the draft, pointer = %d", s.Engine.Pointer())
	}
}

func TestREPLRunsUntilQuit(t *testing.T) {
	s := testSession(t)
	in := strings.NewReader("board\nquit\n")
	var out bytes.Buffer
	if err := s.REPL(in, &out); err != nil {
		t.Fatalf("REPL failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "> ") || !strings.Contains(text, "Bye") {
		t.Errorf("REPL output = %q", text)
	}
}
