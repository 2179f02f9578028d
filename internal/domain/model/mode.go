package model

import "fmt"

// Mode selects the kind of plan to generate.
type Mode string

// Generation modes.
const (
	ModeTeam         Mode = "team"
	ModeIndividual   Mode = "individual"
	ModeConditioning Mode = "conditioning"
	ModeRecovery     Mode = "recovery"
)

// Modes returns every generation mode.
func Modes() []Mode {
	return []Mode{ModeTeam, ModeIndividual, ModeConditioning, ModeRecovery}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeTeam, ModeIndividual, ModeConditioning, ModeRecovery:
		return true
	default:
		return false
	}
}

// ParseMode validates s as a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}
