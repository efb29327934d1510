// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// Config holds settings for the terminal game
type Config struct {
	// Seed fixes the dice for reproducible games; zero seeds from the clock
	Seed int64 `env:"YAHTZEE_SEED"`

	// PlayerName is stored with completed games
	PlayerName string `env:"YAHTZEE_PLAYER" envDefault:"player"`

	// RedisAddr enables the high-score table when set
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// HighScoreLimit is how many results the high-score table shows
	HighScoreLimit int `env:"HIGH_SCORE_LIMIT" envDefault:"5"`
}

// Load reads an optional .env file from dotenvPath and then parses the
// environment. Variables already set win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.PtermLevel(); err != nil {
		return nil, err
	}
	if cfg.HighScoreLimit <= 0 {
		return nil, fmt.Errorf("HIGH_SCORE_LIMIT must be positive, got %d", cfg.HighScoreLimit)
	}

	return cfg, nil
}

// HighScoresEnabled reports whether a Redis address was configured
func (c *Config) HighScoresEnabled() bool {
	return c.RedisAddr != ""
}

// PtermLevel maps LogLevel onto the terminal logger's levels
func (c *Config) PtermLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", c.LogLevel)
}
