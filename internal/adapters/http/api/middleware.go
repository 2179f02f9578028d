package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/teamforge/pkg/metrics"
)

// errorClass labels a failed response in the error counters.
type errorClass struct {
	kind     string
	severity string
}

// errorClasses maps the statuses the planner returns on purpose. Anything
// else falls back to the 4xx/5xx classes in classify.
var errorClasses = map[int]errorClass{ //nolint:gochecknoglobals // lookup table
	http.StatusBadRequest:          {kind: "bad_request", severity: "low"},
	http.StatusNotFound:            {kind: "not_found", severity: "low"},
	http.StatusMethodNotAllowed:    {kind: "method_not_allowed", severity: "low"},
	http.StatusConflict:            {kind: "generation_in_progress", severity: "low"},
	http.StatusUnprocessableEntity: {kind: "precondition", severity: "medium"},
	http.StatusBadGateway:          {kind: "generation_failed", severity: "high"},
}

func classify(status int) (errorClass, bool) {
	if c, ok := errorClasses[status]; ok {
		return c, true
	}
	switch {
	case status >= http.StatusInternalServerError:
		return errorClass{kind: "server_error", severity: "high"}, true
	case status >= http.StatusBadRequest:
		return errorClass{kind: "client_error", severity: "medium"}, true
	default:
		return errorClass{}, false
	}
}

// MetricsMiddleware wraps a handler with request, latency and error metrics
// labelled by endpoint.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		elapsedMs := float64(time.Since(start).Microseconds()) / 1000
		status := rec.Status()
		code := strconv.Itoa(status)
		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, elapsedMs)

		if c, failed := classify(status); failed {
			metrics.RecordErrorByEndpoint(endpoint, r.Method, c.kind)
			metrics.RecordErrorByType(c.kind, c.severity)
			metrics.RecordErrorByComponent("http", c.kind)
		}
	}
}

// statusRecorder remembers the first status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

// Status is the response status, 200 when the handler wrote nothing.
func (rec *statusRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}
