package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"vaxcheck/internal/mockapi"
	"vaxcheck/internal/platform/config"
	"vaxcheck/internal/platform/httpserver"
	"vaxcheck/internal/platform/logger"
)

// main serves the stub WCG API, for local runs of the conformance suite or
// for poking the contract by hand.
func main() {
	cfg := config.StubFromEnv()
	log := logger.New()

	handler := mockapi.NewHandler(mockapi.NewStore(), log)
	srv := httpserver.New(cfg.Addr, handler.Router())

	log.Info("starting mock WCG API", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
