package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/okian/teamforge/internal/adapters/http/api"
	"github.com/okian/teamforge/internal/adapters/http/swagger"
	service "github.com/okian/teamforge/internal/app"
	"github.com/okian/teamforge/internal/config"
	"github.com/okian/teamforge/pkg/logger"
	"github.com/okian/teamforge/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	writeSlack                = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func newServeCmd(gf generatorFactory) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, err := bootstrap(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return serve(ctx, cfg, log, gf)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// serve runs the API until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger, gf generatorFactory) error {
	gen, err := gf(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	svc := service.New(gen,
		service.WithLogger(log.Named("planner")),
		service.WithSystemInstruction(cfg.SystemInstruction),
		service.WithSeedRoster(cfg.SeedRoster),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer svc.Stop()

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout(cfg.RequestTimeout()),
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(gctx, "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(gctx, "server shutdown failed", logger.Error(err))
			return err
		}
		return nil
	})
	g.Go(func() error {
		runSystemMetricsUpdater(gctx, svc)
		return nil
	})

	err = g.Wait()
	log.Info(ctx, "server stopped")
	return err
}

// writeTimeout leaves room for a full generation call inside one response.
func writeTimeout(request time.Duration) time.Duration {
	if request <= 0 {
		return 0
	}
	return request + writeSlack
}

// runSystemMetricsUpdater refreshes runtime and planner gauges until ctx ends.
func runSystemMetricsUpdater(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(metrics.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
			_ = svc.GetStats()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
