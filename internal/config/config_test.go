package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSlots(t *testing.T) {
	cfg := Default()
	want := map[string]int{"QB": 1, "RB": 2, "WR": 2, "TE": 1, "FLEX": 1, "K": 1, "DST": 1}
	for slot, count := range want {
		if cfg.RosterSlots[slot] != count {
			t.Errorf("default %s = %d, want %d", slot, cfg.RosterSlots[slot], count)
		}
	}
	if cfg.Suggest.TopN != 50 || cfg.Suggest.BoardSize != 25 || cfg.Suggest.CliffMargin != 8.0 {
		t.Errorf("default suggest knobs = %+v", cfg.Suggest)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `roster_slots:
  QB: 2
  RB: 3
  WR: 3
  TE: 1
  FLEX: 2
  K: 0
  DST: 0
suggest:
  top_n: 30
  cliff_margin: 5.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RosterSlots["QB"] != 2 || cfg.RosterSlots["FLEX"] != 2 || cfg.RosterSlots["K"] != 0 {
		t.Errorf("slots = %v", cfg.RosterSlots)
	}
	if cfg.Suggest.TopN != 30 {
		t.Errorf("TopN = %d, want 30", cfg.Suggest.TopN)
	}
	if cfg.Suggest.CliffMargin != 5.5 {
		t.Errorf("CliffMargin = %g, want 5.5", cfg.Suggest.CliffMargin)
	}
	// keys absent from the file keep their defaults
	if cfg.Suggest.BoardSize != 25 {
		t.Errorf("BoardSize = %d, want default 25", cfg.Suggest.BoardSize)
	}
	if len(cfg.Suggest.VolatileTags) == 0 {
		t.Error("volatile tags should keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{invalid"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid YAML should fail")
	}
}

func TestApplyRosterOverride(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyRosterOverride("qb:2, RB:3,flex:0"); err != nil {
		t.Fatalf("ApplyRosterOverride failed: %v", err)
	}
	if cfg.RosterSlots["QB"] != 2 || cfg.RosterSlots["RB"] != 3 || cfg.RosterSlots["FLEX"] != 0 {
		t.Errorf("slots = %v", cfg.RosterSlots)
	}
	// untouched slots keep their defaults
	if cfg.RosterSlots["WR"] != 2 {
		t.Errorf("WR = %d, want 2", cfg.RosterSlots["WR"])
	}

	for _, bad := range []string{"QB", "QB:x", "QB:-1"} {
		if err := Default().ApplyRosterOverride(bad); err == nil {
			t.Errorf("override %q should fail", bad)
		}
	}

	if err := cfg.ApplyRosterOverride(""); err != nil {
		t.Errorf("empty override should be a no-op, got %v", err)
	}
}
