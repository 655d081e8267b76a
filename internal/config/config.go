// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the CLI commands.
// Flags override these values.
type Config struct {
	DBPath         string        `env:"REVENGE_DB_PATH"`
	StatePath      string        `env:"REVENGE_STATE_PATH"`
	Size           int           `env:"REVENGE_SIZE" envDefault:"4"`
	ScrambleLength int           `env:"REVENGE_SCRAMBLE_LENGTH" envDefault:"30"`
	SaveDebounce   time.Duration `env:"REVENGE_SAVE_DEBOUNCE" envDefault:"500ms"`
	SaveAttempts   int           `env:"REVENGE_SAVE_ATTEMPTS" envDefault:"3"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no game can be played with.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("cube size must be at least 2, got %d", c.Size)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("scramble length must not be negative, got %d", c.ScrambleLength)
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("save debounce must not be negative, got %s", c.SaveDebounce)
	}
	if c.SaveAttempts < 1 {
		return fmt.Errorf("save attempts must be at least 1, got %d", c.SaveAttempts)
	}
	return nil
}
