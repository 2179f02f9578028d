package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	model "github.com/okian/teamforge/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestSkillLevel(t *testing.T) {
	convey.Convey("Given the skill level enum", t, func() {
		convey.Convey("When parsing known names", func() {
			convey.Convey("Then each maps to its level", func() {
				for _, want := range []model.SkillLevel{model.Weakness, model.Neutral, model.Strength} {
					got, err := model.ParseSkillLevel(want.String())
					convey.So(err, convey.ShouldBeNil)
					convey.So(got, convey.ShouldEqual, want)
				}
			})
		})

		convey.Convey("When parsing an unknown name", func() {
			_, err := model.ParseSkillLevel("3")

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, model.ErrInvalidSkillLevel), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the zero value is marshaled", func() {
			_, err := json.Marshal(model.CustomSkill{ID: "c1", Name: "Counter attack"})

			convey.Convey("Then it should fail instead of emitting a bogus level", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a player is encoded", func() {
			p := model.Player{
				ID:       "p1",
				Name:     "Alex",
				Position: model.PositionDriver,
				Skills:   map[model.SkillCategory]model.SkillLevel{model.SkillPassing: model.Strength},
			}
			b, err := json.Marshal(p)

			convey.Convey("Then levels are written as strings keyed by category", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"Passing":"Strength"`)
			})
		})
	})
}

func TestPlayerClone(t *testing.T) {
	convey.Convey("Given a player with skills and custom skills", t, func() {
		p := model.Player{
			ID:           "p1",
			Name:         "Alex",
			Skills:       map[model.SkillCategory]model.SkillLevel{model.SkillDefense: model.Weakness},
			CustomSkills: []model.CustomSkill{{ID: "c1", Name: "Eggbeater", Level: model.Neutral}},
		}

		convey.Convey("When the clone is mutated", func() {
			c := p.Clone()
			c.Skills[model.SkillDefense] = model.Strength
			c.CustomSkills[0].Name = "changed"

			convey.Convey("Then the original is untouched", func() {
				convey.So(p.Skills[model.SkillDefense], convey.ShouldEqual, model.Weakness)
				convey.So(p.CustomSkills[0].Name, convey.ShouldEqual, "Eggbeater")
			})
		})
	})
}

func TestEnums(t *testing.T) {
	convey.Convey("Given the closed enumerations", t, func() {
		convey.Convey("Then every mode parses and unknown ones fail", func() {
			for _, m := range model.Modes() {
				got, err := model.ParseMode(string(m))
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, m)
			}
			_, err := model.ParseMode("scrimmage")
			convey.So(errors.Is(err, model.ErrInvalidMode), convey.ShouldBeTrue)
		})

		convey.Convey("Then positions parse case-insensitively", func() {
			got, err := model.ParsePosition("  hole set ")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, model.PositionHoleSet)

			_, err = model.ParsePosition("Striker")
			convey.So(errors.Is(err, model.ErrInvalidPosition), convey.ShouldBeTrue)
		})

		convey.Convey("Then difficulty rejects values outside the enum", func() {
			var d model.Drill
			err := json.Unmarshal([]byte(`{"difficulty":"Expert"}`), &d)
			convey.So(err, convey.ShouldNotBeNil)

			err = json.Unmarshal([]byte(`{"difficulty":"Advanced"}`), &d)
			convey.So(err, convey.ShouldBeNil)
			convey.So(d.Difficulty, convey.ShouldEqual, model.Advanced)
		})

		convey.Convey("Then there are nine built-in skill categories", func() {
			convey.So(len(model.SkillCategories()), convey.ShouldEqual, 9)
		})
	})
}

func TestPracticePlanClone(t *testing.T) {
	convey.Convey("Given an enriched plan", t, func() {
		p := model.PracticePlan{
			ID:           "plan-1",
			Type:         model.ModeIndividual,
			Participants: []string{"X", "Y"},
			Title:        "Shooting day",
			Drills:       []model.Drill{{Name: "Skip shots", Difficulty: model.Beginner}},
		}

		convey.Convey("When the clone's slices are edited", func() {
			c := p.Clone()
			c.Participants[0] = "Z"
			c.Drills[0].Name = "Lob shots"

			convey.Convey("Then the original keeps its values", func() {
				convey.So(p.Participants[0], convey.ShouldEqual, "X")
				convey.So(p.Drills[0].Name, convey.ShouldEqual, "Skip shots")
			})
		})
	})
}
