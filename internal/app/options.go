package service

import (
	"github.com/okian/teamforge/internal/adapters/repository"
	"github.com/okian/teamforge/internal/domain/planning"
	"github.com/okian/teamforge/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRoster sets the roster store.
func WithRoster(r repository.RosterStore) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithLibrary sets the plan library.
func WithLibrary(l *repository.PlanLibrary) Option {
	return func(s *Service) {
		if l != nil {
			s.library = l
		}
	}
}

// WithEnricher sets the plan enricher.
func WithEnricher(e *planning.Enricher) Option {
	return func(s *Service) {
		if e != nil {
			s.enricher = e
		}
	}
}

// WithSystemInstruction overrides the persona sent with every request.
func WithSystemInstruction(text string) Option {
	return func(s *Service) {
		s.systemInstruction = text
	}
}

// WithSeedRoster loads the sample roster on Start.
func WithSeedRoster(seed bool) Option {
	return func(s *Service) {
		s.seedRoster = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
