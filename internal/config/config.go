// Package config defines service configuration and its loading.
//
// Conventions:
// - New() returns a Config holding defaults.
// - Load(ctx) layers defaults, an optional YAML file and the environment.
// - Load errors wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"time"

	"github.com/okian/teamforge/internal/domain/prompt"
)

// DefaultSystemInstruction frames every generation request.
const DefaultSystemInstruction = prompt.DefaultSystemInstruction

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`
	// APIKey authenticates against the generation service. It may be empty at
	// load time; every generation attempt then fails as a configuration error.
	APIKey string `koanf:"api_key"`
	// Model names the generation model.
	Model string `koanf:"model"`
	// SystemInstruction is the persona sent with every request.
	SystemInstruction string `koanf:"system_instruction"`
	// RequestTimeoutMS bounds a single generation call; 0 disables the bound.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`
	// SeedRoster loads the sample roster at start-up.
	SeedRoster bool `koanf:"seed_roster"`
}

// New creates a Config holding defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		Model:             "gemini-2.5-flash",
		SystemInstruction: DefaultSystemInstruction,
		RequestTimeoutMS:  60_000,
		SeedRoster:        true,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}
