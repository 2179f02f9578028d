package prompt

import (
	"errors"
	"testing"

	"github.com/okian/teamforge/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func player(id, name string, pos model.Position, weak ...model.SkillCategory) model.Player {
	p := model.Player{
		ID:           id,
		Name:         name,
		Position:     pos,
		Skills:       map[model.SkillCategory]model.SkillLevel{},
		CustomSkills: []model.CustomSkill{},
	}
	for _, c := range model.SkillCategories() {
		p.Skills[c] = model.Neutral
	}
	for _, c := range weak {
		p.Skills[c] = model.Weakness
	}
	return p
}

func testRoster() []model.Player {
	alex := player("a", "Alex Miller", model.PositionDriver, model.SkillDefense, model.SkillHoleSetDefense)
	alex.CustomSkills = []model.CustomSkill{{ID: "c1", Name: "Counter Attack Speed", Level: model.Strength}}
	jordan := player("b", "Jordan Smith", model.PositionHoleSet, model.SkillDefense)
	casey := player("c", "Casey Jones", model.PositionGoalie, model.SkillShooting)
	casey.CustomSkills = []model.CustomSkill{{ID: "c3", Name: "Outlet Passing", Level: model.Weakness}}
	return []model.Player{alex, jordan, casey}
}

func TestBuild_Team(t *testing.T) {
	Convey("Given a team request", t, func() {
		req, err := Build(Input{Mode: model.ModeTeam, Roster: testRoster()})

		Convey("Then the full roster is embedded", func() {
			So(err, ShouldBeNil)
			So(len(req.Profiles), ShouldEqual, 3)
			So(req.Prompt, ShouldContainSubstring, "TEAM practice plan")
			So(req.Prompt, ShouldContainSubstring, "Alex Miller")
			So(req.Prompt, ShouldContainSubstring, "Casey Jones")
			So(req.Prompt, ShouldContainSubstring, "warm-up, skill building, and scrimmaging")
			So(req.RosterJSON, ShouldContainSubstring, `"Defense": "Weakness"`)
			So(req.Tier, ShouldEqual, TierNone)
		})

		Convey("Then aggregate weaknesses include custom skills", func() {
			So(req.Prompt, ShouldContainSubstring, "- Defense: 2\n")
			So(req.Prompt, ShouldContainSubstring, "- Outlet Passing: 1\n")
		})

		Convey("Then the default persona and the fixed schema are used", func() {
			So(req.SystemInstruction, ShouldEqual, DefaultSystemInstruction)
			So(req.Schema, ShouldResemble, PlanSchema())
		})
	})
}

func TestBuild_FocusModes(t *testing.T) {
	Convey("Given an individual request for two of three players", t, func() {
		roster := testRoster()
		req, err := Build(Input{Mode: model.ModeIndividual, Roster: roster, Focus: []model.Player{roster[0], roster[2]}})

		Convey("Then only the focus group is embedded", func() {
			So(err, ShouldBeNil)
			So(len(req.Profiles), ShouldEqual, 2)
			So(req.Profiles[0].Name, ShouldEqual, "Alex Miller")
			So(req.Profiles[1].Name, ShouldEqual, "Casey Jones")
			So(req.Prompt, ShouldNotContainSubstring, "Jordan Smith")
			So(req.Prompt, ShouldContainSubstring, "group of 2 specific players")
			So(req.Prompt, ShouldContainSubstring, "'Weakness' areas")
		})
	})

	Convey("Given an individual request for one player", t, func() {
		roster := testRoster()
		req, err := Build(Input{Mode: model.ModeIndividual, Roster: roster, Focus: roster[1:2]})

		Convey("Then the session is sized for one", func() {
			So(err, ShouldBeNil)
			So(req.Prompt, ShouldContainSubstring, "one-on-one session")
		})
	})

	Convey("Given a conditioning request", t, func() {
		roster := testRoster()
		req, err := Build(Input{Mode: model.ModeConditioning, Roster: roster, Focus: roster[1:2]})

		Convey("Then pool and dryland sections are requested for the focus group only", func() {
			So(err, ShouldBeNil)
			So(req.Prompt, ShouldContainSubstring, "Pool Conditioning")
			So(req.Prompt, ShouldContainSubstring, "Weight Room / Dryland")
			So(req.Prompt, ShouldContainSubstring, "Jordan Smith")
			So(req.Prompt, ShouldNotContainSubstring, "Alex Miller")
			So(req.Profiles[0].Position, ShouldBeEmpty)
		})
	})

	Convey("Focus modes without a focus group are caller bugs", t, func() {
		for _, m := range []model.Mode{model.ModeIndividual, model.ModeConditioning} {
			_, err := Build(Input{Mode: m, Roster: testRoster()})
			So(errors.Is(err, ErrMissingFocus), ShouldBeTrue)
		}
	})
}

func TestBuild_Recovery(t *testing.T) {
	Convey("Given a recovery request with a target", t, func() {
		roster := testRoster()
		req, err := Build(Input{
			Mode:     model.ModeRecovery,
			Roster:   roster,
			Focus:    roster[2:],
			Injury:   "Sprain in left wrist",
			Severity: 8,
		})

		Convey("Then only the target is embedded and the high tier is chosen", func() {
			So(err, ShouldBeNil)
			So(req.Tier, ShouldEqual, TierHigh)
			So(len(req.Profiles), ShouldEqual, 1)
			So(req.Prompt, ShouldContainSubstring, "Plan for Casey Jones")
			So(req.Prompt, ShouldContainSubstring, "Sprain in left wrist")
			So(req.Prompt, ShouldContainSubstring, "8/10")
			So(req.Prompt, ShouldContainSubstring, "No load")
			So(req.Prompt, ShouldNotContainSubstring, "return-to-sport drills")
			So(req.Prompt, ShouldNotContainSubstring, "Alex Miller")
		})
	})

	Convey("Given a recovery request without a target", t, func() {
		req, err := Build(Input{Mode: model.ModeRecovery, Roster: testRoster(), Injury: "Strain in knee", Severity: 2})

		Convey("Then no player data is embedded", func() {
			So(err, ShouldBeNil)
			So(req.Profiles, ShouldBeEmpty)
			So(req.RosterJSON, ShouldBeEmpty)
			So(req.Prompt, ShouldContainSubstring, "Plan for the athlete")
			So(req.Tier, ShouldEqual, TierLow)
		})
	})

	Convey("Recovery without injury details is a caller bug", t, func() {
		_, err := Build(Input{Mode: model.ModeRecovery, Roster: testRoster(), Severity: 5})
		So(errors.Is(err, ErrMissingInjury), ShouldBeTrue)
	})
}

func TestTierFor(t *testing.T) {
	Convey("Tier boundaries", t, func() {
		cases := map[int]Tier{1: TierLow, 3: TierLow, 4: TierMedium, 6: TierMedium, 7: TierHigh, 10: TierHigh}
		for sev, want := range cases {
			got, err := TierFor(sev)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}
		for _, sev := range []int{0, 11, -3} {
			_, err := TierFor(sev)
			So(errors.Is(err, ErrInvalidSeverity), ShouldBeTrue)
		}
	})
}

func TestBuild_Errors(t *testing.T) {
	Convey("Given invalid inputs", t, func() {
		_, err := Build(Input{Mode: model.ModeTeam})
		So(errors.Is(err, ErrEmptyRoster), ShouldBeTrue)

		_, err = Build(Input{Mode: "scrimmage", Roster: testRoster()})
		So(errors.Is(err, ErrUnknownMode), ShouldBeTrue)
	})

	Convey("A custom persona is passed through", t, func() {
		req, err := Build(Input{Mode: model.ModeTeam, Roster: testRoster(), SystemInstruction: "You coach under-12s."})
		So(err, ShouldBeNil)
		So(req.SystemInstruction, ShouldEqual, "You coach under-12s.")
	})
}

func TestWeaknesses(t *testing.T) {
	Convey("Weaknesses are ordered by count then name", t, func() {
		got := Weaknesses(testRoster())
		So(got, ShouldResemble, []Weakness{
			{Skill: "Defense", Count: 2},
			{Skill: "Hole Set Defense", Count: 1},
			{Skill: "Outlet Passing", Count: 1},
			{Skill: "Shooting", Count: 1},
		})
	})
}

func TestPlanSchema(t *testing.T) {
	Convey("The plan schema requires every drill field", t, func() {
		s := PlanSchema()
		So(s.Required, ShouldResemble, []string{"title", "summary", "drills"})
		drill := s.Properties["drills"].Items
		So(drill.Required, ShouldHaveLength, 6)
		So(drill.Properties["difficulty"].Enum, ShouldResemble, []string{"Beginner", "Intermediate", "Advanced"})
	})
}
