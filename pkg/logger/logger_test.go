package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = Init() }()

	ctx := context.Background()
	Named("planner").Info(ctx, "plan generated",
		String("mode", "team"),
		Int("drills", 6),
		Bool("saved", false),
		Duration("elapsed", 1500*time.Millisecond),
		Error(errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{"plan generated", "component=planner", "mode=team", "drills=6", "saved=false", "elapsed=1.5s", "error=boom", "source=logger_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %s", want, out)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = Init() }()

	ctx := context.Background()
	Get().Debug(ctx, "hidden at info")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %s", buf.String())
	}

	if err := SetLevelString("DEBUG"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}
	Get().Debug(ctx, "visible at debug")
	if !strings.Contains(buf.String(), "visible at debug") {
		t.Fatalf("debug record missing: %s", buf.String())
	}

	if err := SetLevelString("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error(context.Background(), "dropped", String("k", "v"))
	if l.Named("x") == nil {
		t.Fatal("named discard logger is nil")
	}
}

func TestInitWithNilWriter(t *testing.T) {
	if err := InitWithWriter(nil); err == nil {
		t.Fatal("expected error for nil writer")
	}
}
