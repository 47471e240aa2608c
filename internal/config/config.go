// Package config loads runtime settings from the environment, after an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Store directory; empty means discover .studio/ from the cwd.
	Dir string `env:"STUDIO_DIR"`

	Format    string `env:"STUDIO_FORMAT" envDefault:"json"` // json, yaml
	LogLevel  string `env:"STUDIO_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"STUDIO_LOG_FORMAT" envDefault:"text"` // text, json
	ExportDir string `env:"STUDIO_EXPORT_DIR" envDefault:"."`
}

// Load reads .env files (missing files are fine) and parses the
// environment into a Config.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("STUDIO_FORMAT: unknown format %q (expected json|yaml)", c.Format)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("STUDIO_LOG_FORMAT: unknown log format %q (expected text|json)", c.LogFormat)
	}
	return nil
}
