package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bleach-trivia/internal/domain"
)

// Mode is one configurable game-mode preset.
type Mode struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Questions   int    `yaml:"questions"`
	Description string `yaml:"description"`
}

type Config struct {
	Data struct {
		Questions   string `yaml:"questions"`
		Answers     string `yaml:"answers"`
		Leaderboard string `yaml:"leaderboard"`
		// Fallback is a secondary leaderboard location tried when writing
		// the primary fails.
		Fallback string `yaml:"fallback_leaderboard"`
	} `yaml:"data"`
	Game struct {
		Modes      []Mode `yaml:"modes"`
		MaxEntries int    `yaml:"max_entries"`
		MaxName    int    `yaml:"max_name_length"`
	} `yaml:"game"`
}

// Default is the stock setup: three modes, top-10 boards, data/ directory
// layout.
func Default() Config {
	cfg := Config{}
	cfg.Data.Questions = "data/questions.json"
	cfg.Data.Answers = "data/answers.json"
	cfg.Data.Leaderboard = "data/leaderboard.json"
	cfg.Data.Fallback = "leaderboard.json"
	cfg.Game.Modes = []Mode{
		{Key: "short", Name: "Short Game", Questions: 5, Description: "A quick 5-question challenge (5-10 minutes)"},
		{Key: "medium", Name: "Medium Game", Questions: 20, Description: "A standard 20-question challenge (15-30 minutes)"},
		{Key: "long", Name: "Long Game", Questions: 50, Description: "An epic 50-question challenge (30-60 minutes)"},
	}
	cfg.Game.MaxEntries = 10
	cfg.Game.MaxName = 20
	return cfg
}

// Load reads YAML config from path. A missing file yields the defaults; a
// present but invalid file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	cfg.Game.Modes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Game.Modes) == 0 {
		cfg.Game.Modes = Default().Game.Modes
	}
	if cfg.Game.MaxName <= 0 {
		cfg.Game.MaxName = Default().Game.MaxName
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Game.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be positive, got %d", c.Game.MaxEntries)
	}
	seen := map[string]bool{}
	for _, m := range c.Game.Modes {
		if m.Key == "" {
			return fmt.Errorf("game mode with empty key")
		}
		if seen[m.Key] {
			return fmt.Errorf("duplicate game mode key %q", m.Key)
		}
		seen[m.Key] = true
		if m.Questions <= 0 {
			return fmt.Errorf("invalid question count for mode %s", m.Key)
		}
	}
	return nil
}

// GameModes converts the mode table to domain values, preserving menu order.
func (c Config) GameModes() []domain.GameMode {
	modes := make([]domain.GameMode, len(c.Game.Modes))
	for i, m := range c.Game.Modes {
		name := m.Name
		if name == "" {
			name = m.Key
		}
		modes[i] = domain.GameMode{Key: m.Key, Name: name, Questions: m.Questions, Description: m.Description}
	}
	return modes
}

// ModeKeys returns just the configured keys, in order.
func (c Config) ModeKeys() []string {
	keys := make([]string, len(c.Game.Modes))
	for i, m := range c.Game.Modes {
		keys[i] = m.Key
	}
	return keys
}
