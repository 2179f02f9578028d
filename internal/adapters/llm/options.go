package llm

import (
	"time"

	"github.com/okian/teamforge/pkg/logger"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Option configures a GeminiGenerator.
type Option func(*GeminiGenerator)

// WithModel sets the model name.
func WithModel(name string) Option {
	return func(g *GeminiGenerator) {
		if name != "" {
			g.model = name
		}
	}
}

// WithTimeout bounds each call. Zero leaves the caller's deadline alone.
func WithTimeout(d time.Duration) Option {
	return func(g *GeminiGenerator) {
		if d >= 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(g *GeminiGenerator) {
		if l != nil {
			g.log = l
		}
	}
}

// withModels replaces the SDK models service.
func withModels(m contentGenerator) Option {
	return func(g *GeminiGenerator) {
		g.models = m
	}
}
