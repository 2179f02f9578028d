package service_test

import (
	"context"
	"sync"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/prompt"
)

func rawPlan() model.RawPlan {
	return model.RawPlan{
		Title:   "Shark Tank",
		Summary: "Counter attack focus.",
		Drills: []model.Drill{{
			Name:        "3v2 break",
			Duration:    "15 mins",
			Category:    "Offense",
			Description: "Fast break reps.",
			Focus:       "Transition",
			Difficulty:  model.Advanced,
		}},
	}
}

// fakeGenerator stands in for the Gemini client.
type fakeGenerator struct {
	mu        sync.Mutex
	plan      model.RawPlan
	err       error
	panicWith any
	release   chan struct{} // when set, Generate waits for it to close
	entered   chan struct{} // when set, signalled on entry
	calls     int
	last      prompt.Request
}

func newFake() *fakeGenerator {
	return &fakeGenerator{plan: rawPlan()}
}

func (f *fakeGenerator) Generate(_ context.Context, req prompt.Request) (model.RawPlan, error) {
	f.mu.Lock()
	f.calls++
	f.last = req
	plan, err, p := f.plan, f.err, f.panicWith
	release, entered := f.release, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if p != nil {
		panic(p)
	}
	return plan, err
}

func (f *fakeGenerator) set(fn func(f *fakeGenerator)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeGenerator) snapshot() (int, prompt.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.last
}
