package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Game.Modes) != 3 {
		t.Fatalf("expected 3 default modes, got %d", len(cfg.Game.Modes))
	}
	if cfg.Game.Modes[0].Key != "short" || cfg.Game.Modes[0].Questions != 5 {
		t.Fatalf("unexpected default short mode: %+v", cfg.Game.Modes[0])
	}
	if cfg.Game.MaxEntries != 10 {
		t.Fatalf("expected top-10 cap, got %d", cfg.Game.MaxEntries)
	}
}

func TestLoadCustomModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
data:
  questions: q.json
  answers: a.json
  leaderboard: lb.json
game:
  modes:
    - key: blitz
      name: Blitz
      questions: 3
  max_entries: 5
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Questions != "q.json" {
		t.Fatalf("expected questions path override, got %q", cfg.Data.Questions)
	}
	modes := cfg.GameModes()
	if len(modes) != 1 || modes[0].Key != "blitz" || modes[0].Questions != 3 {
		t.Fatalf("unexpected modes: %+v", modes)
	}
	if got := cfg.ModeKeys(); len(got) != 1 || got[0] != "blitz" {
		t.Fatalf("unexpected mode keys: %v", got)
	}
}

func TestLoadRejectsInvalidModeCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
game:
  modes:
    - key: broken
      questions: 0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for zero-question mode")
	}
}

func TestLoadRejectsDuplicateModeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
game:
  modes:
    - key: short
      questions: 5
    - key: short
      questions: 10
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for duplicate mode keys")
	}
}
