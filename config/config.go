// Package config loads run tunables from a YAML file.
// Missing file or fields fall back to defaults, so the game
// always starts with a playable configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seltf/shape-game/parameter"
)

// Config is the root of the YAML document
type Config struct {
	Arena ArenaConfig `yaml:"arena"`
	Audio AudioConfig `yaml:"audio"`
	Game  GameConfig  `yaml:"game"`
}

// ArenaConfig sets the simulation bounds in arena units
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AudioConfig controls the synth backend
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GameConfig sets run parameters
type GameConfig struct {
	// Seed for deterministic runs; 0 derives one from the clock
	Seed uint64 `yaml:"seed"`
	// StartLevel skews spawn composition and counts from the first wave
	StartLevel int `yaml:"startLevel"`
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Load reads the config file at path, layering it over defaults.
// A missing file is not an error; malformed YAML or invalid values are
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Game.StartLevel < 0 {
		return fmt.Errorf("startLevel must be >= 0, got %d", c.Game.StartLevel)
	}
	return nil
}

// SeedOrNow returns the configured seed, or one derived from the clock
func (c *Config) SeedOrNow() uint64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return uint64(time.Now().UnixNano())
}
