// Package metrics provides Prometheus metrics for the TeamForge planner service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Generation outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeBusy     = "busy"
)

// Default bucket layouts, in milliseconds. Generation spans a fast answer up
// to a slow structured response; HTTP also covers the cheap roster routes.
func defaultGenerationBuckets() []float64 {
	return []float64{250, 500, 1000, 2000, 4000, 8000, 15000, 30000, 60000}
}

func defaultHTTPBuckets() []float64 {
	return []float64{1, 5, 10, 25, 50, 100, 250, 1000, 5000, 15000, 60000}
}

// Manager manages all Prometheus metrics for the planner service.
type Manager struct {
	namespace         string
	subsystem         string
	generationBuckets []float64
	httpBuckets       []float64
	enabled           bool
	refreshInterval   time.Duration
	customLabels      map[string]string
	metricPrefix      string
	registry          prometheus.Registerer

	// Generation lifecycle
	generationAttempts *prometheus.CounterVec
	generationLatency  *prometheus.HistogramVec
	generationInFlight prometheus.Gauge
	serviceFailures    *prometheus.CounterVec

	// Roster and library
	rosterPlayers   prometheus.Gauge
	rosterMutations *prometheus.CounterVec
	libraryPlans    prometheus.Gauge
	plansSaved      *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:         "teamforge",
		subsystem:         "planner",
		generationBuckets: defaultGenerationBuckets(),
		httpBuckets:       defaultHTTPBuckets(),
		enabled:           true,
		refreshInterval:   defaultRefreshInterval,
		customLabels:      make(map[string]string),
		registry:          prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)
	constLabels := prometheus.Labels(m.customLabels)

	m.generationAttempts = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("generation_attempts_total"),
			Help:        "Plan generation attempts by mode and outcome",
			ConstLabels: constLabels,
		},
		[]string{"mode", "outcome"},
	)

	m.generationLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("generation_latency_milliseconds"),
			Help:        "Time spent waiting on the generation service, in milliseconds",
			Buckets:     m.generationBuckets,
			ConstLabels: constLabels,
		},
		[]string{"mode"},
	)

	m.generationInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("generation_in_flight"),
		Help:        "1 while a generation request is outstanding",
		ConstLabels: constLabels,
	})

	m.serviceFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("generation_failures_total"),
			Help:        "Generation failures by kind (config, service, schema, empty, unexpected)",
			ConstLabels: constLabels,
		},
		[]string{"kind"},
	)

	m.rosterPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("roster_players"),
		Help:        "Number of players on the roster",
		ConstLabels: constLabels,
	})

	m.rosterMutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("roster_mutations_total"),
			Help:        "Roster mutations by action",
			ConstLabels: constLabels,
		},
		[]string{"action"},
	)

	m.libraryPlans = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("library_plans"),
		Help:        "Number of plans in the plan library",
		ConstLabels: constLabels,
	})

	m.plansSaved = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("plans_saved_total"),
			Help:        "Plans saved to the library by mode",
			ConstLabels: constLabels,
		},
		[]string{"mode"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.httpBuckets,
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_component_total"),
			Help:        "Total number of errors by component",
			ConstLabels: constLabels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_type_total"),
			Help:        "Total number of errors by type",
			ConstLabels: constLabels,
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_endpoint_total"),
			Help:        "Total number of errors by endpoint",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: constLabels,
	})
}

// Enabled reports whether the manager records observations.
func (m *Manager) Enabled() bool { return m.enabled }

// RefreshInterval is how often callers should refresh gauge snapshots.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// RecordGenerationAttempt counts one generation attempt.
func RecordGenerationAttempt(mode, outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.generationAttempts.WithLabelValues(mode, outcome).Inc()
}

// RecordGenerationLatency records the time spent on the external call.
func RecordGenerationLatency(mode string, d time.Duration) {
	if !globalManager.enabled {
		return
	}
	globalManager.generationLatency.WithLabelValues(mode).Observe(float64(d.Milliseconds()))
}

// SetGenerationInFlight flips the in-flight gauge.
func SetGenerationInFlight(inFlight bool) {
	v := 0.0
	if inFlight {
		v = 1
	}
	globalManager.generationInFlight.Set(v)
}

// RecordGenerationFailure counts a failed attempt by failure kind.
func RecordGenerationFailure(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.serviceFailures.WithLabelValues(kind).Inc()
}

// UpdateRosterSize sets the roster gauge.
func UpdateRosterSize(count int) {
	globalManager.rosterPlayers.Set(float64(count))
}

// RecordRosterMutation counts a roster change such as "add_player".
func RecordRosterMutation(action string) {
	if !globalManager.enabled {
		return
	}
	globalManager.rosterMutations.WithLabelValues(action).Inc()
}

// UpdateLibrarySize sets the plan library gauge.
func UpdateLibrarySize(count int) {
	globalManager.libraryPlans.Set(float64(count))
}

// RecordPlanSaved counts a plan saved to the library.
func RecordPlanSaved(mode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.plansSaved.WithLabelValues(mode).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RefreshInterval reports how often the global manager's gauges should be
// refreshed by background updaters.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}
