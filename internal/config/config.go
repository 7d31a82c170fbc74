// Package config loads service configuration from defaults, an optional
// YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrMissingDatabaseURL is returned when no store address is configured.
// The process must refuse to start in that case.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Config contains process configuration.
type Config struct {
	// DatabaseURL is the store connection address. Required.
	DatabaseURL string `koanf:"database_url"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile enables rotating file logging when non-empty.
	LogFile string `koanf:"log_file"`
}

// New returns a Config holding the service defaults.
func New() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if POSTAPI_CONFIG is set
//  3. env (prefix POSTAPI_, e.g. POSTAPI_ADDR -> addr)
//  4. bare DATABASE_URL, kept for compatibility with existing deployments
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("POSTAPI_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like POSTAPI_LOG_LEVEL -> log_level (flat keys),
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("POSTAPI_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "postapi_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}

	return &cfg, nil
}
