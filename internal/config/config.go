// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

// Config holds the environment settings shared by the CLI commands
type Config struct {
	// RedisAddr enables round log persistence when set. host:port or a
	// redis:// URL.
	RedisAddr   string        `env:"MELEE_REDIS_ADDR"`
	RoundLogTTL time.Duration `env:"MELEE_ROUND_LOG_TTL" envDefault:"1h"`
	MaxRounds   int           `env:"MELEE_MAX_ROUNDS"    envDefault:"20"`
	LogLevel    string        `env:"MELEE_LOG_LEVEL"     envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.RoundLogTTL <= 0 {
		vb.InvalidField("MELEE_ROUND_LOG_TTL", "must be positive")
	}
	errors.ValidatePositive("MELEE_MAX_ROUNDS", c.MaxRounds, vb)
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		vb.InvalidField("MELEE_LOG_LEVEL", "must be one of debug, info, warn, error")
	}
	return vb.Build()
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// SlogLevel maps LogLevel onto slog, falling back to info
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
