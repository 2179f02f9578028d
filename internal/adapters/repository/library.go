package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/pkg/metrics"
)

// teamDateLayout formats the date in team practice titles.
const teamDateLayout = "2006-01-02"

// PlanLibrary keeps saved plans in memory, most recent first. Entries are
// snapshots and never change after Save.
type PlanLibrary struct {
	mu    sync.RWMutex
	plans []model.PracticePlan
	opts  options
}

// NewPlanLibrary returns an empty library.
func NewPlanLibrary(opts ...Option) *PlanLibrary {
	l := &PlanLibrary{opts: applyOptions(opts)}
	metrics.UpdateLibrarySize(0)
	return l
}

// Save stores a copy of plan under its display title and returns the copy.
// The caller's plan is left untouched. Saving the same plan twice stores two
// entries.
func (l *PlanLibrary) Save(_ context.Context, plan model.PracticePlan) (model.PracticePlan, error) {
	if plan.ID == "" {
		return model.PracticePlan{}, ErrUnenrichedPlan
	}
	snap := plan.Clone()
	snap.Title = DisplayTitle(plan, l.opts.now())

	l.mu.Lock()
	l.plans = append([]model.PracticePlan{snap}, l.plans...)
	n := len(l.plans)
	l.mu.Unlock()

	metrics.UpdateLibrarySize(n)
	metrics.RecordPlanSaved(string(plan.Type))
	return snap.Clone(), nil
}

// List returns copies of every saved plan, most recent first.
func (l *PlanLibrary) List(_ context.Context) []model.PracticePlan {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.PracticePlan, len(l.plans))
	for i, p := range l.plans {
		out[i] = p.Clone()
	}
	return out
}

// Get returns the saved plan with id.
func (l *PlanLibrary) Get(_ context.Context, id string) (model.PracticePlan, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.plans {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return model.PracticePlan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}

// Count returns the number of saved plans.
func (l *PlanLibrary) Count(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.plans)
}

// DisplayTitle derives a library title from the plan's type and participants.
// Plans without a type keep their own title.
func DisplayTitle(plan model.PracticePlan, now time.Time) string {
	names := strings.Join(plan.Participants, ", ")
	switch plan.Type {
	case model.ModeIndividual:
		return names + " Individual Focus"
	case model.ModeConditioning:
		return names + " Conditioning"
	case model.ModeRecovery:
		return names + " Recovery Plan"
	case model.ModeTeam:
		return "Team Practice - " + now.Format(teamDateLayout)
	default:
		return plan.Title
	}
}
