// Command teamforge serves the planner API and generates one-off plans from
// the command line.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/teamforge/internal/adapters/llm"
	"github.com/okian/teamforge/internal/config"
	"github.com/okian/teamforge/pkg/logger"
)

// generatorFactory builds the generation client from configuration.
type generatorFactory func(ctx context.Context, cfg *config.Config, log logger.Logger) (llm.Generator, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newGeminiGenerator).ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("teamforge: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func newRootCmd(gf generatorFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "teamforge",
		Short:         "Water polo practice planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(gf), newPlanCmd(gf))
	return root
}

// bootstrap initializes logging to w and loads configuration
// (defaults -> optional file -> env).
func bootstrap(ctx context.Context, w io.Writer) (*config.Config, logger.Logger, error) {
	if err := logger.InitWithWriter(w); err != nil {
		return nil, nil, err
	}
	log := logger.Get()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, log, nil
}

func newGeminiGenerator(ctx context.Context, cfg *config.Config, log logger.Logger) (llm.Generator, error) {
	if cfg.APIKey == "" {
		log.Warn(ctx, "no API key configured; plan generation will fail until one is set")
	}
	return llm.NewGeminiGenerator(ctx, cfg.APIKey,
		llm.WithModel(cfg.Model),
		llm.WithTimeout(cfg.RequestTimeout()),
		llm.WithLogger(log.Named("llm")),
	)
}
