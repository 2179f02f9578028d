package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/teamforge/internal/app"
	"github.com/okian/teamforge/internal/adapters/repository"
	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/types"
)

func TestService_Start(t *testing.T) {
	Convey("Given a service configured to seed the roster", t, func() {
		ctx := context.Background()
		svc := service.New(newFake(), service.WithSeedRoster(true))
		defer svc.Stop()

		Convey("When starting the service twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the sample roster is loaded once", func() {
				So(model.Names(svc.Roster(ctx)), ShouldResemble, []string{"Alex Miller", "Jordan Smith", "Casey Jones"})
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["players"], ShouldEqual, 3)
				So(stats["phase"], ShouldEqual, "idle")
			})
		})
	})

	Convey("Given a service without seeding", t, func() {
		ctx := context.Background()
		svc := service.New(newFake())
		So(svc.Start(ctx), ShouldBeNil)

		Convey("Then the roster starts empty", func() {
			So(svc.Roster(ctx), ShouldBeEmpty)
		})

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_RosterActions(t *testing.T) {
	Convey("Given a service with two players", t, func() {
		ctx := context.Background()
		svc := service.New(newFake())
		alex, err := svc.AddPlayer(ctx, "Alex", model.PositionDriver)
		So(err, ShouldBeNil)
		casey, err := svc.AddPlayer(ctx, "Casey", model.PositionGoalie)
		So(err, ShouldBeNil)

		Convey("When rating skills and custom skills", func() {
			_, err := svc.UpdateSkill(ctx, alex.ID, model.SkillDefense, model.Weakness)
			So(err, ShouldBeNil)
			withCustom, err := svc.AddCustomSkill(ctx, alex.ID, "Counter Attack Speed", model.Strength)
			So(err, ShouldBeNil)

			Convey("Then the roster reflects the changes", func() {
				got, err := svc.Player(ctx, alex.ID)
				So(err, ShouldBeNil)
				So(got.Skills[model.SkillDefense], ShouldEqual, model.Weakness)
				So(got.CustomSkills, ShouldHaveLength, 1)
			})

			Convey("Then a custom skill can be removed", func() {
				got, err := svc.RemoveCustomSkill(ctx, alex.ID, withCustom.CustomSkills[0].ID)
				So(err, ShouldBeNil)
				So(got.CustomSkills, ShouldBeEmpty)
			})
		})

		Convey("When a category is added", func() {
			So(svc.AddSkillCategory(ctx, "Sprinting"), ShouldBeNil)

			Convey("Then every player is rated Neutral in it", func() {
				for _, p := range svc.Roster(ctx) {
					So(p.Skills["Sprinting"], ShouldEqual, model.Neutral)
				}
				So(svc.Categories(ctx), ShouldContain, model.SkillCategory("Sprinting"))
			})
		})

		Convey("When toggling the planner selection", func() {
			sel, err := svc.TogglePlannerSelection(ctx, casey.ID)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, []string{casey.ID})
			sel, err = svc.TogglePlannerSelection(ctx, alex.ID)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, []string{casey.ID, alex.ID})
			sel, err = svc.TogglePlannerSelection(ctx, casey.ID)
			So(err, ShouldBeNil)

			Convey("Then toggling twice deselects", func() {
				So(sel, ShouldResemble, []string{alex.ID})
				So(svc.State(ctx).Selected, ShouldResemble, []string{alex.ID})
			})

			Convey("Then unknown players cannot be selected", func() {
				_, err := svc.TogglePlannerSelection(ctx, "ghost")
				So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
			})
		})

		Convey("When a selected injury target is removed", func() {
			_, err := svc.TogglePlannerSelection(ctx, alex.ID)
			So(err, ShouldBeNil)
			_, err = svc.TogglePlannerSelection(ctx, casey.ID)
			So(err, ShouldBeNil)
			So(svc.UpdateRecoveryForm(ctx, types.RecoveryForm{Issue: "Strain", Location: "Knee", PlayerID: alex.ID, Severity: 6}), ShouldBeNil)

			So(svc.RemovePlayer(ctx, alex.ID), ShouldBeNil)

			Convey("Then the removal cascades to the selection and the form", func() {
				st := svc.State(ctx)
				So(st.Selected, ShouldResemble, []string{casey.ID})
				So(st.Recovery.PlayerID, ShouldBeEmpty)
				So(st.Recovery.Issue, ShouldEqual, "Strain")
				So(model.Names(svc.Roster(ctx)), ShouldResemble, []string{"Casey"})
			})
		})

		Convey("When the injury form names an unknown player", func() {
			err := svc.UpdateRecoveryForm(ctx, types.RecoveryForm{Issue: "Strain", Location: "Knee", PlayerID: "ghost"})

			Convey("Then the form is rejected", func() {
				So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
				So(svc.State(ctx).Recovery, ShouldResemble, types.RecoveryForm{})
			})
		})

		Convey("When removing an unknown player", func() {
			So(errors.Is(svc.RemovePlayer(ctx, "ghost"), repository.ErrPlayerNotFound), ShouldBeTrue)
		})
	})
}

func TestService_PlanLibrary(t *testing.T) {
	Convey("Given a service with a generated team plan", t, func() {
		ctx := context.Background()
		svc := service.New(newFake())
		_, _ = svc.AddPlayer(ctx, "Alex", model.PositionDriver)

		Convey("When nothing has been generated", func() {
			_, err := svc.SavePlan(ctx)
			So(errors.Is(err, service.ErrNoCurrentPlan), ShouldBeTrue)
		})

		Convey("When saving the current plan", func() {
			plan, err := svc.Generate(ctx, model.ModeTeam)
			So(err, ShouldBeNil)
			saved, err := svc.SavePlan(ctx)
			So(err, ShouldBeNil)

			Convey("Then the library holds a retitled snapshot and the current plan is unchanged", func() {
				So(saved.ID, ShouldEqual, plan.ID)
				So(saved.Title, ShouldStartWith, "Team Practice - ")
				current, ok := svc.CurrentPlan(ctx)
				So(ok, ShouldBeTrue)
				So(cmp.Diff(plan, current), ShouldBeEmpty)
				So(current.Title, ShouldEqual, "Shark Tank")
			})

			Convey("Then discarding keeps the saved entry", func() {
				svc.DiscardPlan(ctx)
				_, ok := svc.CurrentPlan(ctx)
				So(ok, ShouldBeFalse)
				So(svc.State(ctx).HasPlan, ShouldBeFalse)
				got, err := svc.SavedPlan(ctx, saved.ID)
				So(err, ShouldBeNil)
				So(cmp.Diff(saved, got), ShouldBeEmpty)
				So(svc.SavedPlans(ctx), ShouldHaveLength, 1)
			})

			Convey("Then mutating the returned plan does not reach the library", func() {
				plan.Drills[0].Name = "changed"
				got, _ := svc.SavedPlan(ctx, saved.ID)
				So(got.Drills[0].Name, ShouldEqual, "3v2 break")
			})
		})
	})
}
