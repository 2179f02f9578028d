// Package types contains the read-only views handed to callers of the
// planner service.
package types

import "github.com/okian/teamforge/internal/domain/model"

// Phase is a step of the generation lifecycle.
type Phase string

// Lifecycle phases. Rejected and failed attempts return to PhaseIdle.
const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseRequesting Phase = "requesting"
	PhaseEnriching  Phase = "enriching"
)

// Busy reports whether an attempt is in flight.
func (p Phase) Busy() bool {
	return p != PhaseIdle
}

// RecoveryForm is the injury form as last submitted. Severity 0 means not
// supplied.
type RecoveryForm struct {
	Issue    string `json:"issue"`
	Location string `json:"location"`
	PlayerID string `json:"player_id"`
	Severity int    `json:"severity"`
}

// State is a snapshot of the planner for rendering.
type State struct {
	Phase    Phase        `json:"phase"`
	Busy     bool         `json:"busy"`
	Error    string       `json:"error,omitempty"`
	Selected []string     `json:"selected"`
	Recovery RecoveryForm `json:"recovery"`
	HasPlan  bool         `json:"has_plan"`
	LastMode model.Mode   `json:"last_mode,omitempty"`
}
