package repository

import (
	"time"

	"github.com/google/uuid"
)

// Option applies a configuration option to a roster or library.
type Option func(*options)

type options struct {
	newID func() string
	now   func() time.Time
}

func defaultOptions() options {
	return options{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIDGenerator replaces the UUID generator used for new players and
// custom skills.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithClock sets the time source used for display titles.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		if fn != nil {
			o.now = fn
		}
	}
}
