package repository

import (
	"context"
	"fmt"

	"github.com/okian/teamforge/internal/domain/model"
)

// notRated marks a category the coach left unassessed.
const notRated = 0

type sampleSkill struct {
	name   string
	rating int
}

type samplePlayer struct {
	name     string
	position model.Position
	ratings  [9]int // in model.SkillCategories order
	custom   []sampleSkill
}

var samplePlayers = []samplePlayer{ //nolint:gochecknoglobals // fixed demo data
	{
		name:     "Alex Miller",
		position: model.PositionDriver,
		ratings:  [9]int{5, 3, 5, 4, 3, 2, 1, 5, notRated},
		custom:   []sampleSkill{{name: "Counter Attack Speed", rating: 5}},
	},
	{
		name:     "Jordan Smith",
		position: model.PositionHoleSet,
		ratings:  [9]int{3, 5, 3, 3, 5, 3, 2, 5, notRated},
	},
	{
		name:     "Casey Jones",
		position: model.PositionGoalie,
		ratings:  [9]int{4, 5, 3, 5, 1, 5, notRated, 1, 5},
		custom: []sampleSkill{
			{name: "Penalty Blocking", rating: 5},
			{name: "Outlet Passing", rating: 2},
		},
	},
}

// LevelFromRating maps a 1-5 coach rating onto a skill level: 4-5 is a
// Strength, 1-2 a Weakness, anything else Neutral.
func LevelFromRating(rating int) model.SkillLevel {
	switch {
	case rating >= 4:
		return model.Strength
	case rating >= 1 && rating <= 2:
		return model.Weakness
	default:
		return model.Neutral
	}
}

// SampleRoster returns the demo squad without ids.
func SampleRoster() []model.Player {
	cats := model.SkillCategories()
	out := make([]model.Player, 0, len(samplePlayers))
	for _, sp := range samplePlayers {
		p := model.Player{
			Name:         sp.name,
			Position:     sp.position,
			Skills:       make(map[model.SkillCategory]model.SkillLevel, len(cats)),
			CustomSkills: make([]model.CustomSkill, 0, len(sp.custom)),
		}
		for i, c := range cats {
			p.Skills[c] = LevelFromRating(sp.ratings[i])
		}
		for _, cs := range sp.custom {
			p.CustomSkills = append(p.CustomSkills, model.CustomSkill{Name: cs.name, Level: LevelFromRating(cs.rating)})
		}
		out = append(out, p)
	}
	return out
}

// Seed inserts the demo squad into store.
func Seed(ctx context.Context, store RosterStore) error {
	for _, p := range SampleRoster() {
		if _, err := store.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed %s: %w", p.Name, err)
		}
	}
	return nil
}
