// Package service is the planner's orchestrator. It owns the roster,
// the planner selection, the injury form, the current plan and the
// generation lifecycle, and exposes them as intent-named actions.
package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/teamforge/internal/adapters/llm"
	"github.com/okian/teamforge/internal/adapters/repository"
	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/planning"
	"github.com/okian/teamforge/internal/domain/types"
	"github.com/okian/teamforge/pkg/logger"
	"github.com/okian/teamforge/pkg/metrics"
)

// Service implements the actions behind the HTTP API and the CLI.
type Service struct {
	mu sync.Mutex

	// Core components
	roster    repository.RosterStore
	library   *repository.PlanLibrary
	generator llm.Generator
	enricher  *planning.Enricher

	// Configuration
	systemInstruction string
	seedRoster        bool

	// State
	started  bool
	phase    types.Phase
	errMsg   string
	selected []string
	recovery types.RecoveryForm
	current  *model.PracticePlan
	lastMode model.Mode

	// Logging
	logger logger.Logger
}

// New constructs a Service around generator. Components not supplied via
// options are created in memory.
func New(generator llm.Generator, opts ...Option) *Service {
	s := &Service{
		generator: generator,
		phase:     types.PhaseIdle,
		selected:  []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.roster == nil {
		s.roster = repository.NewInMemoryRoster()
	}
	if s.library == nil {
		s.library = repository.NewPlanLibrary()
	}
	if s.enricher == nil {
		s.enricher = planning.NewEnricher()
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}

// Start seeds the roster when configured. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.seedRoster && s.roster.Count(ctx) == 0 {
		if err := repository.Seed(ctx, s.roster); err != nil {
			return fmt.Errorf("seed roster: %w", err)
		}
		s.logger.Info(ctx, "sample roster loaded", logger.Int("players", s.roster.Count(ctx)))
	}
	s.started = true
	s.logger.Info(ctx, "planner service started",
		logger.Int("players", s.roster.Count(ctx)),
		logger.Int("savedPlans", s.library.Count(ctx)),
	)
	return nil
}

// Stop marks the service stopped. In-memory state is kept.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "planner service stopped")
}

// AddPlayer adds a player rated Neutral everywhere.
func (s *Service) AddPlayer(ctx context.Context, name string, position model.Position) (model.Player, error) {
	p, err := s.roster.Add(ctx, name, position)
	if err != nil {
		return model.Player{}, err
	}
	s.logger.Debug(ctx, "player added", logger.String("id", p.ID), logger.String("name", p.Name))
	return p, nil
}

// RemovePlayer deletes a player and drops it from the planner selection and
// the injury form.
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Remove(ctx, id); err != nil {
		return err
	}
	s.selected = slices.DeleteFunc(s.selected, func(v string) bool { return v == id })
	if s.recovery.PlayerID == id {
		s.recovery.PlayerID = ""
	}
	s.logger.Debug(ctx, "player removed", logger.String("id", id))
	return nil
}

// UpdateSkill rates one category for a player.
func (s *Service) UpdateSkill(ctx context.Context, id string, category model.SkillCategory, level model.SkillLevel) (model.Player, error) {
	return s.roster.UpdateSkill(ctx, id, category, level)
}

// AddCustomSkill attaches a custom skill to a player.
func (s *Service) AddCustomSkill(ctx context.Context, id, name string, level model.SkillLevel) (model.Player, error) {
	return s.roster.AddCustomSkill(ctx, id, name, level)
}

// RemoveCustomSkill detaches a custom skill from a player.
func (s *Service) RemoveCustomSkill(ctx context.Context, id, skillID string) (model.Player, error) {
	return s.roster.RemoveCustomSkill(ctx, id, skillID)
}

// AddSkillCategory registers a category and rates it Neutral for everyone.
func (s *Service) AddSkillCategory(ctx context.Context, category model.SkillCategory) error {
	return s.roster.RegisterCategory(ctx, category)
}

// TogglePlannerSelection adds or removes a player from the individual and
// conditioning selection and returns the new selection.
func (s *Service) TogglePlannerSelection(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.roster.Get(ctx, id); err != nil {
		return nil, err
	}
	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
	} else {
		s.selected = append(s.selected, id)
	}
	return slices.Clone(s.selected), nil
}

// UpdateRecoveryForm replaces the injury form. A target player, when set,
// must be on the roster.
func (s *Service) UpdateRecoveryForm(ctx context.Context, form types.RecoveryForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.PlayerID != "" {
		if _, err := s.roster.Get(ctx, form.PlayerID); err != nil {
			return err
		}
	}
	s.recovery = form
	return nil
}

// SavePlan copies the current plan into the library.
func (s *Service) SavePlan(ctx context.Context) (model.PracticePlan, error) {
	s.mu.Lock()
	var current model.PracticePlan
	ok := s.current != nil
	if ok {
		current = s.current.Clone()
	}
	s.mu.Unlock()

	if !ok {
		return model.PracticePlan{}, ErrNoCurrentPlan
	}
	saved, err := s.library.Save(ctx, current)
	if err != nil {
		return model.PracticePlan{}, err
	}
	s.logger.Info(ctx, "plan saved",
		logger.String("id", saved.ID),
		logger.String("title", saved.Title))
	return saved, nil
}

// DiscardPlan drops the current plan, if any.
func (s *Service) DiscardPlan(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Roster returns every player in roster order.
func (s *Service) Roster(ctx context.Context) []model.Player {
	return s.roster.List(ctx)
}

// Player returns one player.
func (s *Service) Player(ctx context.Context, id string) (model.Player, error) {
	return s.roster.Get(ctx, id)
}

// Categories returns the registered skill categories.
func (s *Service) Categories(ctx context.Context) []model.SkillCategory {
	return s.roster.Categories(ctx)
}

// State returns a snapshot of the planner.
func (s *Service) State(_ context.Context) types.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.State{
		Phase:    s.phase,
		Busy:     s.phase.Busy(),
		Error:    s.errMsg,
		Selected: slices.Clone(s.selected),
		Recovery: s.recovery,
		HasPlan:  s.current != nil,
		LastMode: s.lastMode,
	}
}

// CurrentPlan returns a copy of the current plan.
func (s *Service) CurrentPlan(_ context.Context) (model.PracticePlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.PracticePlan{}, false
	}
	return s.current.Clone(), true
}

// SavedPlans returns the library, most recent first.
func (s *Service) SavedPlans(ctx context.Context) []model.PracticePlan {
	return s.library.List(ctx)
}

// SavedPlan returns one saved plan.
func (s *Service) SavedPlan(ctx context.Context, id string) (model.PracticePlan, error) {
	return s.library.Get(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()

	s.mu.Lock()
	stats := map[string]interface{}{
		"started":  s.started,
		"phase":    string(s.phase),
		"selected": len(s.selected),
		"hasPlan":  s.current != nil,
	}
	s.mu.Unlock()

	players := s.roster.Count(ctx)
	saved := s.library.Count(ctx)
	stats["players"] = players
	stats["savedPlans"] = saved
	stats["categories"] = len(s.roster.Categories(ctx))

	metrics.UpdateRosterSize(players)
	metrics.UpdateLibrarySize(saved)
	return stats
}
