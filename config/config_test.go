package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seltf/shape-game/parameter"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to be non-fatal, got %v", err)
	}
	if cfg.Arena.Width != parameter.ArenaWidth || cfg.Arena.Height != parameter.ArenaHeight {
		t.Errorf("Expected default arena %vx%v, got %vx%v",
			parameter.ArenaWidth, parameter.ArenaHeight, cfg.Arena.Width, cfg.Arena.Height)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape-game.yaml")
	data := `
arena:
  width: 800
  height: 600
audio:
  enabled: false
game:
  seed: 42
  startLevel: 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected valid config to load, got %v", err)
	}
	if cfg.Arena.Width != 800 || cfg.Arena.Height != 600 {
		t.Errorf("Expected arena 800x600, got %vx%v", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Game.Seed != 42 || cfg.Game.StartLevel != 3 {
		t.Errorf("Expected seed 42 level 3, got seed %d level %d", cfg.Game.Seed, cfg.Game.StartLevel)
	}
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape-game.yaml")
	if err := os.WriteFile(path, []byte("game:\n  startLevel: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected partial config to load, got %v", err)
	}
	if cfg.Game.StartLevel != 2 {
		t.Errorf("Expected start level 2, got %d", cfg.Game.StartLevel)
	}
	if cfg.Arena.Width != parameter.ArenaWidth {
		t.Errorf("Expected default width kept, got %v", cfg.Arena.Width)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape-game.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: -10\n  height: 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected negative arena width to be rejected")
	}

	if err := os.WriteFile(path, []byte("not: [valid yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected malformed YAML to be rejected")
	}
}

func TestSeedOrNow(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 7
	if cfg.SeedOrNow() != 7 {
		t.Errorf("Expected configured seed, got %d", cfg.SeedOrNow())
	}

	cfg.Game.Seed = 0
	if cfg.SeedOrNow() == 0 {
		t.Error("Expected a derived seed for zero config")
	}
}
