package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"vaxcheck/internal/contract"
	"vaxcheck/internal/contract/tracer"
	"vaxcheck/internal/platform/config"
	"vaxcheck/internal/platform/httpserver"
	"vaxcheck/internal/platform/logger"
	"vaxcheck/internal/platform/metrics"
	"vaxcheck/internal/wcg"
)

// main wires the conformance runner. One-shot by default; setting
// WCG_WATCH_INTERVAL turns it into a long-running watcher that re-runs the
// suite and exposes Prometheus metrics.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.BaseURL == "" {
		log.Error("WCG_URL is required")
		os.Exit(2)
	}

	api := wcg.NewClient(cfg.BaseURL, wcg.WithTimeout(cfg.Timeout))
	runner := contract.NewRunner(api,
		contract.WithLogger(log),
		contract.WithTracer(tracer.NewOTel()),
	)

	if cfg.WatchInterval <= 0 {
		report := runner.Run(context.Background())
		log.Info("conformance run finished",
			"run_id", report.RunID,
			"checks", len(report.Results),
			"failed", report.Failed(),
			"duration_ms", report.Duration.Milliseconds(),
		)
		if !report.Passed() {
			os.Exit(1)
		}
		return
	}

	if err := watch(log, runner, cfg); err != nil {
		log.Error("watcher exited", "error", err)
		os.Exit(1)
	}
	log.Info("watcher stopped")
}

// watch re-runs the suite on an interval, recording outcomes as Prometheus
// metrics, until interrupted.
func watch(log *slog.Logger, runner *contract.Runner, cfg config.Harness) error {
	m := metrics.New()

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","service":"vaxcheck"}`))
	})
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.WatchInterval)
		defer ticker.Stop()
		for {
			report := runner.Run(ctx)
			for _, res := range report.Results {
				m.RecordCheck(res.Name, res.Passed())
			}
			m.RecordSuite(report.Duration.Seconds(), report.Passed())

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down metrics server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
