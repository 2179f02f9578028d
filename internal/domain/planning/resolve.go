// Package planning resolves who a plan is for and stamps generated plans
// with session metadata.
package planning

import (
	"fmt"
	"strings"

	"github.com/okian/teamforge/internal/domain/model"
)

// Severity bounds for recovery plans.
const (
	MinSeverity     = 1
	MaxSeverity     = 10
	DefaultSeverity = 5
)

// RecoveryInput is the injury form. Severity 0 means not supplied.
type RecoveryInput struct {
	Issue    string `json:"issue"`
	Location string `json:"location"`
	PlayerID string `json:"player_id"`
	Severity int    `json:"severity"`
}

// Context is a validated generation request.
type Context struct {
	Mode   model.Mode
	Roster []model.Player
	// Focus is nil for team plans and for recovery plans without a target.
	Focus []model.Player
	// Injury is "<issue> in <location>" for recovery plans.
	Injury   string
	Severity int
}

// Resolve validates a generation request against the roster and picks the
// focus group. It has no side effects.
func Resolve(mode model.Mode, roster []model.Player, selected []string, recovery RecoveryInput) (Context, error) {
	if len(roster) == 0 {
		return Context{}, precondition(ErrEmptyRoster)
	}

	ctx := Context{Mode: mode, Roster: roster}
	switch mode {
	case model.ModeTeam:
		return ctx, nil

	case model.ModeIndividual, model.ModeConditioning:
		focus, err := resolveSelection(roster, selected)
		if err != nil {
			return Context{}, err
		}
		ctx.Focus = focus
		return ctx, nil

	case model.ModeRecovery:
		issue := strings.TrimSpace(recovery.Issue)
		location := strings.TrimSpace(recovery.Location)
		if issue == "" || location == "" {
			return Context{}, precondition(ErrMissingInjuryDetails)
		}

		severity := recovery.Severity
		if severity == 0 {
			severity = DefaultSeverity
		}
		if severity < MinSeverity || severity > MaxSeverity {
			return Context{}, precondition(fmt.Errorf("%w: got %d", ErrInvalidSeverity, recovery.Severity))
		}

		if recovery.PlayerID != "" {
			p, ok := findPlayer(roster, recovery.PlayerID)
			if !ok {
				return Context{}, precondition(fmt.Errorf("%w: %s", ErrUnknownPlayer, recovery.PlayerID))
			}
			ctx.Focus = []model.Player{p}
		}
		ctx.Injury = issue + " in " + location
		ctx.Severity = severity
		return ctx, nil

	default:
		return Context{}, precondition(fmt.Errorf("%w: %q", ErrUnsupportedMode, mode))
	}
}

// resolveSelection keeps roster order regardless of the order ids were
// selected in.
func resolveSelection(roster []model.Player, selected []string) ([]model.Player, error) {
	if len(selected) == 0 {
		return nil, precondition(ErrNoParticipants)
	}
	want := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := findPlayer(roster, id); !ok {
			return nil, precondition(fmt.Errorf("%w: %s", ErrUnknownPlayer, id))
		}
		want[id] = struct{}{}
	}

	focus := make([]model.Player, 0, len(want))
	for _, p := range roster {
		if _, ok := want[p.ID]; ok {
			focus = append(focus, p)
		}
	}
	return focus, nil
}

func findPlayer(roster []model.Player, id string) (model.Player, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return model.Player{}, false
}
