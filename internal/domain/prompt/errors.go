package prompt

import "errors"

// Sentinel kinds for request building errors. These indicate a caller bug:
// inputs are expected to come from a resolved planning context.
var (
	ErrUnknownMode     = errors.New("unknown generation mode")
	ErrEmptyRoster     = errors.New("roster is empty")
	ErrMissingFocus    = errors.New("mode requires a focus group")
	ErrMissingInjury   = errors.New("recovery requires injury details")
	ErrInvalidSeverity = errors.New("severity out of range")
)
