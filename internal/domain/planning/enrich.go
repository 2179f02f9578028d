package planning

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/okian/teamforge/internal/domain/model"
)

// Placeholder participants when a plan has no focus group.
const (
	TeamParticipant    = "Team"
	InjuredParticipant = "Injured Player"
)

// Enricher turns a raw generated plan into a PracticePlan.
type Enricher struct {
	newID func() string
	now   func() time.Time
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) EnricherOption {
	return func(e *Enricher) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithClock replaces the time source.
func WithClock(fn func() time.Time) EnricherOption {
	return func(e *Enricher) {
		if fn != nil {
			e.now = fn
		}
	}
}

// NewEnricher returns an Enricher using random UUIDs and the wall clock.
func NewEnricher(opts ...EnricherOption) *Enricher {
	e := &Enricher{newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich stamps raw with a fresh id, the current time in epoch millis, the
// mode and the participant names. Title, summary and drills are copied as-is.
func (e *Enricher) Enrich(raw model.RawPlan, mode model.Mode, focus []model.Player) model.PracticePlan {
	return model.PracticePlan{
		ID:           e.newID(),
		CreatedAt:    e.now().UnixMilli(),
		Type:         mode,
		Participants: participants(mode, focus),
		Title:        raw.Title,
		Summary:      raw.Summary,
		Drills:       slices.Clone(raw.Drills),
	}
}

func participants(mode model.Mode, focus []model.Player) []string {
	if len(focus) > 0 {
		return model.Names(focus)
	}
	switch mode {
	case model.ModeTeam:
		return []string{TeamParticipant}
	case model.ModeRecovery:
		return []string{InjuredParticipant}
	default:
		return []string{}
	}
}
