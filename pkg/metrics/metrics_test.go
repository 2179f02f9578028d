package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created and enabled", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Enabled(), ShouldBeTrue)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("pfx"),
				WithGenerationBuckets(100, 1000),
				WithHTTPBuckets(1, 10),
				WithMetricsEnabled(false),
				WithRefreshInterval(3*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.rosterPlayers.Set(4)

			Convey("Then collectors use the configured names and labels", func() {
				So(manager.Enabled(), ShouldBeFalse)
				So(manager.RefreshInterval(), ShouldEqual, 3*time.Second)

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, mf := range families {
					if mf.GetName() == "test_namespace_test_subsystem_pfx_roster_players" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestGenerationMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When a successful team attempt is recorded", func() {
			before := testutil.ToFloat64(globalManager.generationAttempts.WithLabelValues("team", OutcomeSuccess))
			RecordGenerationAttempt("team", OutcomeSuccess)

			Convey("Then the counter increases by one", func() {
				after := testutil.ToFloat64(globalManager.generationAttempts.WithLabelValues("team", OutcomeSuccess))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When the in-flight gauge is toggled", func() {
			SetGenerationInFlight(true)
			on := testutil.ToFloat64(globalManager.generationInFlight)
			SetGenerationInFlight(false)
			off := testutil.ToFloat64(globalManager.generationInFlight)

			Convey("Then it reads 1 then 0", func() {
				So(on, ShouldEqual, 1)
				So(off, ShouldEqual, 0)
			})
		})

		Convey("When roster and library gauges are updated", func() {
			UpdateRosterSize(12)
			UpdateLibrarySize(3)

			Convey("Then the gauges hold the latest values", func() {
				So(testutil.ToFloat64(globalManager.rosterPlayers), ShouldEqual, 12)
				So(testutil.ToFloat64(globalManager.libraryPlans), ShouldEqual, 3)
			})
		})

		Convey("When recording the remaining series", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordGenerationLatency("recovery", 1500*time.Millisecond)
					RecordGenerationFailure("schema")
					RecordRosterMutation("add_player")
					RecordPlanSaved("individual")
					RecordHTTPRequest("generate", "POST", "200")
					RecordHTTPRequestDuration("generate", "POST", "200", 12.0)
					RecordErrorByComponent("llm", "timeout")
					RecordErrorByType("server_error", "high")
					RecordErrorByEndpoint("generate", "POST", "server_error")
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(10)
					RecordSystemGCPauseTime(0.4)
				}, ShouldNotPanic)
			})
		})

		Convey("When the custom registry is gathered", func() {
			families, err := GetRegistry().Gather()

			Convey("Then planner metrics are present", func() {
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, mf := range families {
					names = append(names, mf.GetName())
				}
				So(strings.Join(names, ","), ShouldContainSubstring, "teamforge_planner_generation_attempts_total")
			})
		})
	})
}
