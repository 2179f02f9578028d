package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names read outside the TEAMFORGE_ prefix.
const (
	EnvConfigFile   = "TEAMFORGE_CONFIG"
	envPrefix       = "TEAMFORGE_"
	envGeminiAPIKey = "GEMINI_API_KEY"
	envAPIKey       = "API_KEY"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TEAMFORGE_CONFIG is set
//  3. env (prefix TEAMFORGE_)
//
// When no api_key was configured, GEMINI_API_KEY and then API_KEY are consulted.
func Load(_ context.Context) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// TEAMFORGE_REQUEST_TIMEOUT_MS -> request_timeout_ms (flat keys).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = firstEnv(envGeminiAPIKey, envAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields every command depends on. A missing API key is
// not a validation error.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.Model) == "":
		return fmt.Errorf("%w: model must not be empty", ErrInvalidConfig)
	case c.RequestTimeoutMS < 0:
		return fmt.Errorf("%w: request_timeout_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}
