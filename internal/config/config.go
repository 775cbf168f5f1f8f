// Package config loads server configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/codequest-gg/codequest-api/internal/errors"
)

// Config holds server configuration
type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8080"`
	RedisAddr     string     `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	ContentDir    string     `env:"CONTENT_DIR" envDefault:"content"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	CombatSession struct {
		TTLMinutes int `env:"COMBAT_SESSION_TTL_MINUTES" envDefault:"30"`
	}
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}
	return &cfg, nil
}
