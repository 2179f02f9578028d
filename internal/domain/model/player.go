package model

import (
	"fmt"
	"slices"
	"strings"
)

// Position is a player's role in the water.
type Position string

// Supported positions.
const (
	PositionDriver  Position = "Driver"
	PositionHoleSet Position = "Hole Set"
	PositionWing    Position = "Wing"
	PositionPoint   Position = "Point"
	PositionGoalie  Position = "Goalie"
	PositionUtility Position = "Utility"
)

// Positions returns every supported position in display order.
func Positions() []Position {
	return []Position{
		PositionDriver,
		PositionHoleSet,
		PositionWing,
		PositionPoint,
		PositionGoalie,
		PositionUtility,
	}
}

// ParsePosition matches s against the supported positions, ignoring case
// and surrounding whitespace.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	for _, p := range Positions() {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Player is one athlete on the roster. Skills must hold a rating for every
// registered category; the roster store enforces that.
type Player struct {
	ID           string                       `json:"id" yaml:"id"`
	Name         string                       `json:"name" yaml:"name"`
	Position     Position                     `json:"position" yaml:"position"`
	Skills       map[SkillCategory]SkillLevel `json:"skills" yaml:"skills"`
	CustomSkills []CustomSkill                `json:"custom_skills" yaml:"custom_skills"`
}

// Clone returns a deep copy of p.
func (p Player) Clone() Player {
	out := p
	out.Skills = make(map[SkillCategory]SkillLevel, len(p.Skills))
	for k, v := range p.Skills {
		out.Skills[k] = v
	}
	out.CustomSkills = slices.Clone(p.CustomSkills)
	return out
}

// Names returns the display names of players, preserving order.
func Names(players []Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
