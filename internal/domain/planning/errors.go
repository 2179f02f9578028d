package planning

import "errors"

// ErrPrecondition is matched by every resolution failure. The specific
// sentinels below carry the text shown to the coach.
var ErrPrecondition = errors.New("generation precondition failed")

// Resolution failures. Their text is user-facing.
var (
	ErrEmptyRoster          = errors.New("Roster is empty. Add players first.")
	ErrNoParticipants       = errors.New("Please select at least one player.")
	ErrMissingInjuryDetails = errors.New("Please describe the injury and location.")
	ErrUnknownPlayer        = errors.New("Selected player is not on the roster.")
	ErrInvalidSeverity      = errors.New("Pain severity must be between 1 and 10.")
	ErrUnsupportedMode      = errors.New("Unknown plan type.")
)

var preconditions = []error{ //nolint:gochecknoglobals // lookup table
	ErrEmptyRoster,
	ErrNoParticipants,
	ErrMissingInjuryDetails,
	ErrUnknownPlayer,
	ErrInvalidSeverity,
	ErrUnsupportedMode,
}

// preconditionError joins a detailed failure with ErrPrecondition.
type preconditionError struct {
	err error
}

func (e preconditionError) Error() string   { return e.err.Error() }
func (e preconditionError) Unwrap() []error { return []error{e.err, ErrPrecondition} }

func precondition(err error) error {
	return preconditionError{err: err}
}

// Message returns the user-facing text for a resolution failure, or "" when
// err is not one.
func Message(err error) string {
	if !errors.Is(err, ErrPrecondition) {
		return ""
	}
	for _, p := range preconditions {
		if errors.Is(err, p) {
			return p.Error()
		}
	}
	return ""
}
