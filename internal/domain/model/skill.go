// Package model contains domain models passed between layers.
package model

import "fmt"

// SkillCategory is an assessable competency. The display string doubles as
// the JSON key in a player's skill map.
type SkillCategory string

// Built-in skill categories, in display order.
const (
	SkillSwimming       SkillCategory = "Swimming & Conditioning"
	SkillTreading       SkillCategory = "Treading (Legs)"
	SkillBallHandling   SkillCategory = "Ball Handling"
	SkillPassing        SkillCategory = "Passing"
	SkillShooting       SkillCategory = "Shooting"
	SkillDefense        SkillCategory = "Defense"
	SkillHoleSetDefense SkillCategory = "Hole Set Defense"
	SkillOffense        SkillCategory = "Offense"
	SkillGoalie         SkillCategory = "Goalie Skills"
)

// SkillCategories returns the built-in categories in display order.
// The returned slice is a fresh copy.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		SkillSwimming,
		SkillTreading,
		SkillBallHandling,
		SkillPassing,
		SkillShooting,
		SkillDefense,
		SkillHoleSetDefense,
		SkillOffense,
		SkillGoalie,
	}
}

// SkillLevel is a categorical rating. There is no numeric scale.
type SkillLevel int

// Skill levels. The zero value is not a valid level so that a missing
// rating is never mistaken for Neutral.
const (
	Weakness SkillLevel = iota + 1
	Neutral
	Strength
)

// String returns the wire name of the level.
func (l SkillLevel) String() string {
	switch l {
	case Weakness:
		return "Weakness"
	case Neutral:
		return "Neutral"
	case Strength:
		return "Strength"
	default:
		return fmt.Sprintf("SkillLevel(%d)", int(l))
	}
}

// Valid reports whether l is one of the three defined levels.
func (l SkillLevel) Valid() bool {
	switch l {
	case Weakness, Neutral, Strength:
		return true
	default:
		return false
	}
}

// ParseSkillLevel parses the wire name of a level.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch s {
	case "Weakness":
		return Weakness, nil
	case "Neutral":
		return Neutral, nil
	case "Strength":
		return Strength, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSkillLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l SkillLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSkillLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *SkillLevel) UnmarshalText(b []byte) error {
	v, err := ParseSkillLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// CustomSkill is a player-specific trait outside the fixed category set.
type CustomSkill struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Level SkillLevel `json:"level" yaml:"level"`
}

// UnmarshalYAML lets roster files spell levels the same way JSON does.
func (l *SkillLevel) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
