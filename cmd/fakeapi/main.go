package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/mahotsav/championship-admin/internal/config"
	"github.com/mahotsav/championship-admin/internal/observability"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With("service", cfg.ServiceName+"-fakeapi")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing := observability.InitTracing(cfg, logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	srv, err := app.NewFakeAPIServer(cfg, logger)
	if err != nil {
		logger.Error("build fake api", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("fake api starting", "addr", cfg.FakeAPIAddr, "seeded", cfg.FakeAPISeed)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("fake api failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("fake api stopped")
}
