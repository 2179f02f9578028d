package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given planner response statuses", t, func() {
		cases := []struct {
			status   int
			kind     string
			severity string
		}{
			{http.StatusBadRequest, "bad_request", "low"},
			{http.StatusNotFound, "not_found", "low"},
			{http.StatusConflict, "generation_in_progress", "low"},
			{http.StatusUnprocessableEntity, "precondition", "medium"},
			{http.StatusBadGateway, "generation_failed", "high"},
			{http.StatusTeapot, "client_error", "medium"},
			{http.StatusServiceUnavailable, "server_error", "high"},
		}
		for _, tc := range cases {
			c, failed := classify(tc.status)
			So(failed, ShouldBeTrue)
			So(c.kind, ShouldEqual, tc.kind)
			So(c.severity, ShouldEqual, tc.severity)
		}

		Convey("Successful statuses are not errors", func() {
			_, failed := classify(http.StatusCreated)
			So(failed, ShouldBeFalse)
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given handlers wrapped in the metrics middleware", t, func() {
		Convey("A handler that only writes a body reports 200", func() {
			var seen *statusRecorder
			h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				seen = w.(*statusRecorder)
				_, _ = w.Write([]byte("ok"))
			}, "test")
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			So(w.Code, ShouldEqual, http.StatusOK)
			So(seen.Status(), ShouldEqual, http.StatusOK)
		})

		Convey("The first explicit status wins", func() {
			var seen *statusRecorder
			h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				seen = w.(*statusRecorder)
				writeError(w, http.StatusUnprocessableEntity, "precondition_failed", nil)
			}, "test")
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodPost, "/", http.NoBody))

			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(seen.Status(), ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}
