package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/mahotsav/championship-admin/internal/config"
	"github.com/mahotsav/championship-admin/internal/interfaces/cli"
	"github.com/mahotsav/championship-admin/internal/observability"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		return 2
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	admin := app.NewAdmin(cfg, logger)
	if err := cli.Execute(ctx, admin, os.Args[1:]); err != nil {
		return 1
	}
	return 0
}
