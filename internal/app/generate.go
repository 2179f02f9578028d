package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/okian/teamforge/internal/adapters/llm"
	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/planning"
	"github.com/okian/teamforge/internal/domain/prompt"
	"github.com/okian/teamforge/internal/domain/types"
	"github.com/okian/teamforge/pkg/logger"
	"github.com/okian/teamforge/pkg/metrics"
)

// Generate runs one generation attempt for mode. Only one attempt may be in
// flight; a concurrent call gets ErrGenerationInProgress and changes nothing.
//
// On failure the returned error matches planning.ErrPrecondition,
// llm.ErrMissingAPIKey, llm.ErrService or ErrUnexpected, and State reports the
// matching user-facing message until the next attempt.
func (s *Service) Generate(ctx context.Context, mode model.Mode) (plan model.PracticePlan, err error) {
	s.mu.Lock()
	if s.phase.Busy() {
		s.mu.Unlock()
		metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeBusy)
		return model.PracticePlan{}, ErrGenerationInProgress
	}
	s.phase = types.PhaseValidating
	s.errMsg = ""
	s.current = nil
	selected := slices.Clone(s.selected)
	recovery := s.recovery
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "generation panicked",
				logger.String("mode", string(mode)),
				logger.Any("panic", r))
			metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeFailed)
			s.finish(MsgUnexpected, nil, mode)
			plan, err = model.PracticePlan{}, fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	rc, err := planning.Resolve(mode, s.roster.List(ctx), selected, planning.RecoveryInput{
		Issue:    recovery.Issue,
		Location: recovery.Location,
		PlayerID: recovery.PlayerID,
		Severity: recovery.Severity,
	})
	if err != nil {
		s.logger.Debug(ctx, "generation rejected", logger.String("mode", string(mode)), logger.Error(err))
		metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeRejected)
		s.finish(planning.Message(err), nil, mode)
		return model.PracticePlan{}, err
	}

	req, err := prompt.Build(prompt.Input{
		Mode:              rc.Mode,
		Roster:            rc.Roster,
		Focus:             rc.Focus,
		Injury:            rc.Injury,
		Severity:          rc.Severity,
		SystemInstruction: s.systemInstruction,
	})
	if err != nil {
		s.logger.Error(ctx, "build request", logger.String("mode", string(mode)), logger.Error(err))
		metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeFailed)
		s.finish(MsgUnexpected, nil, mode)
		return model.PracticePlan{}, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	metrics.SetGenerationInFlight(true)
	defer metrics.SetGenerationInFlight(false)
	s.setPhase(types.PhaseRequesting)
	start := time.Now()
	raw, err := s.generator.Generate(ctx, req)
	metrics.RecordGenerationLatency(string(mode), time.Since(start))
	if err != nil {
		s.logger.Error(ctx, "generation failed", logger.String("mode", string(mode)), logger.Error(err))
		metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeFailed)
		s.finish(MsgGenerationFailed, nil, mode)
		if !errors.Is(err, llm.ErrMissingAPIKey) && !errors.Is(err, llm.ErrService) {
			err = fmt.Errorf("%w: %w", llm.ErrService, err)
		}
		return model.PracticePlan{}, err
	}

	s.setPhase(types.PhaseEnriching)
	plan = s.enricher.Enrich(raw, mode, rc.Focus)
	s.finish("", &plan, mode)

	metrics.RecordGenerationAttempt(string(mode), metrics.OutcomeSuccess)
	s.logger.Info(ctx, "plan generated",
		logger.String("id", plan.ID),
		logger.String("mode", string(mode)),
		logger.Strings("participants", plan.Participants),
		logger.Int("drills", len(plan.Drills)))
	return plan.Clone(), nil
}

func (s *Service) setPhase(p types.Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// finish ends an attempt: back to idle with either a message or a plan.
func (s *Service) finish(msg string, plan *model.PracticePlan, mode model.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = types.PhaseIdle
	s.errMsg = msg
	s.lastMode = mode
	if plan != nil {
		cp := plan.Clone()
		s.current = &cp
	}
}

// UserMessage maps an action error to the text shown to the coach.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, planning.ErrPrecondition):
		return planning.Message(err)
	case errors.Is(err, llm.ErrMissingAPIKey), errors.Is(err, llm.ErrService):
		return MsgGenerationFailed
	case errors.Is(err, ErrGenerationInProgress):
		return "A plan is already being generated."
	default:
		return MsgUnexpected
	}
}
