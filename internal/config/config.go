// Package config loads the shell's configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the chatsh host configuration.
type Config struct {
	Prefix          string `env:"CHATSH_PREFIX" envDefault:"/"`
	LogFile         string `env:"CHATSH_LOG_FILE" envDefault:"chatsh.log"`
	LogLevel        string `env:"CHATSH_LOG_LEVEL" envDefault:"info"`
	UsageDB         string `env:"CHATSH_USAGE_DB" envDefault:"chatsh.db"`
	CooldownSeconds int    `env:"CHATSH_COOLDOWN_SECONDS" envDefault:"3"`
	AdminUser       string `env:"CHATSH_ADMIN_USER" envDefault:"admin"`
	NoColor         bool   `env:"CHATSH_NO_COLOR"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
