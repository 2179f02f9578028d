package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okian/teamforge/internal/adapters/repository"
	service "github.com/okian/teamforge/internal/app"
	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/types"
)

var errUnknownName = errors.New("no player with that name")

// rosterFile is the YAML layout accepted by --roster.
type rosterFile struct {
	Categories []model.SkillCategory `yaml:"categories"`
	Players    []model.Player        `yaml:"players"`
}

type planFlags struct {
	mode     string
	roster   string
	selected []string
	issue    string
	location string
	target   string
	severity int
}

func newPlanCmd(gf generatorFactory) *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate one practice plan and print it as JSON",
		Example: `  teamforge plan --mode team
  teamforge plan --mode individual --roster squad.yaml --select "Alex Miller" --select "Casey Jones"
  teamforge plan --mode recovery --issue "Shoulder strain" --location "Right shoulder" --target "Jordan Smith" --severity 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), gf, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.mode, "mode", string(model.ModeTeam), "plan type: team, individual, conditioning or recovery")
	fl.StringVar(&f.roster, "roster", "", "YAML roster file (default: the sample squad)")
	fl.StringArrayVar(&f.selected, "select", nil, "player name to focus on; repeatable")
	fl.StringVar(&f.issue, "issue", "", "injury description for recovery plans")
	fl.StringVar(&f.location, "location", "", "injury location for recovery plans")
	fl.StringVar(&f.target, "target", "", "injured player name for recovery plans")
	fl.IntVar(&f.severity, "severity", 0, "pain severity 1-10 for recovery plans")
	return cmd
}

// runPlan drives the same actions the HTTP API exposes, against a throwaway
// roster. Logs go to errOut so out carries only the plan.
func runPlan(ctx context.Context, out, errOut io.Writer, gf generatorFactory, f planFlags) error {
	cfg, log, err := bootstrap(ctx, errOut)
	if err != nil {
		return err
	}
	mode, err := model.ParseMode(f.mode)
	if err != nil {
		return err
	}

	roster := repository.NewInMemoryRoster()
	if f.roster == "" {
		err = repository.Seed(ctx, roster)
	} else {
		err = loadRoster(ctx, roster, f.roster)
	}
	if err != nil {
		return err
	}

	gen, err := gf(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}
	svc := service.New(gen,
		service.WithRoster(roster),
		service.WithLogger(log.Named("planner")),
		service.WithSystemInstruction(cfg.SystemInstruction),
	)

	players := svc.Roster(ctx)
	toggled := make(map[string]struct{}, len(f.selected))
	for _, name := range f.selected {
		id, err := playerID(players, name)
		if err != nil {
			return err
		}
		// A repeated --select would toggle the player back out.
		if _, ok := toggled[id]; ok {
			continue
		}
		toggled[id] = struct{}{}
		if _, err := svc.TogglePlannerSelection(ctx, id); err != nil {
			return err
		}
	}

	form := types.RecoveryForm{Issue: f.issue, Location: f.location, Severity: f.severity}
	if f.target != "" {
		if form.PlayerID, err = playerID(players, f.target); err != nil {
			return err
		}
	}
	if err := svc.UpdateRecoveryForm(ctx, form); err != nil {
		return err
	}

	plan, err := svc.Generate(ctx, mode)
	if err != nil {
		return errors.New(service.UserMessage(err))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// loadRoster reads a YAML roster file into store. Extra categories are
// registered before players so their ratings validate.
func loadRoster(ctx context.Context, store repository.RosterStore, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("parse roster %s: %w", path, err)
	}
	for _, c := range rf.Categories {
		if err := store.RegisterCategory(ctx, c); err != nil && !errors.Is(err, repository.ErrDuplicateCategory) {
			return err
		}
	}
	for _, p := range rf.Players {
		if p.Position == "" {
			p.Position = model.PositionUtility
		}
		if _, err := store.Insert(ctx, p); err != nil {
			return fmt.Errorf("roster player %q: %w", p.Name, err)
		}
	}
	return nil
}

func playerID(players []model.Player, name string) (string, error) {
	for _, p := range players {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownName, name)
}
