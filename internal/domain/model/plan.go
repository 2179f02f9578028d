package model

import (
	"fmt"
	"slices"
)

// Difficulty grades a drill.
type Difficulty string

// Drill difficulties accepted from the generation service.
const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties returns the accepted difficulty values.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// Valid reports whether d is one of the accepted values.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects values outside the enum.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v := Difficulty(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, string(b))
	}
	*d = v
	return nil
}

// Drill is a single exercise produced by the generation service. Only its
// shape is checked; the content is taken as-is.
type Drill struct {
	Name        string     `json:"name"`
	Duration    string     `json:"duration"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Focus       string     `json:"focus"`
	Difficulty  Difficulty `json:"difficulty"`
}

// RawPlan is the plan body returned by the generation service before any
// session metadata is attached.
type RawPlan struct {
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Drills  []Drill `json:"drills"`
}

// PracticePlan is an enriched plan. ID, CreatedAt, Type and Participants are
// written only by the enricher.
type PracticePlan struct {
	ID           string   `json:"id"`
	CreatedAt    int64    `json:"created_at"` // epoch millis
	Type         Mode     `json:"type"`
	Participants []string `json:"participants"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Drills       []Drill  `json:"drills"`
}

// Clone returns a deep copy of p.
func (p PracticePlan) Clone() PracticePlan {
	out := p
	out.Participants = slices.Clone(p.Participants)
	out.Drills = slices.Clone(p.Drills)
	return out
}
