package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Manager. Zero values leave the default in place.
type Option func(*Manager)

// WithNamespace overrides the "teamforge" namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem overrides the "planner" subsystem.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithMetricPrefix prepends prefix to every metric name after the subsystem.
func WithMetricPrefix(prefix string) Option {
	return func(m *Manager) {
		m.metricPrefix = prefix
	}
}

// WithGenerationBuckets sets the generation latency buckets, in milliseconds.
func WithGenerationBuckets(buckets ...float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.generationBuckets = buckets
		}
	}
}

// WithHTTPBuckets sets the HTTP duration buckets, in milliseconds.
func WithHTTPBuckets(buckets ...float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.httpBuckets = buckets
		}
	}
}

// WithMetricsEnabled toggles the counters and histograms gated by Enabled.
// Gauges always track the latest value.
func WithMetricsEnabled(enabled bool) Option {
	return func(m *Manager) {
		m.enabled = enabled
	}
}

// WithRefreshInterval sets how often background updaters refresh gauges.
func WithRefreshInterval(interval time.Duration) Option {
	return func(m *Manager) {
		if interval > 0 {
			m.refreshInterval = interval
		}
	}
}

// WithCustomLabels attaches constant labels, e.g. {"env": "prod"}, to every
// collector.
func WithCustomLabels(labels map[string]string) Option {
	return func(m *Manager) {
		for k, v := range labels {
			m.customLabels[k] = v
		}
	}
}

// WithPrometheusRegistry registers collectors on r instead of the default
// registerer.
func WithPrometheusRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}
