package service_test

import (
	"testing"

	"go.uber.org/goleak"
)

// The genai client pulls in opencensus, whose stats worker starts in init
// and never exits.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}
