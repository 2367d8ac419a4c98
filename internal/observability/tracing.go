// Package observability installs the global OpenTelemetry providers. Spans
// from the usecase layer, the API client and the fake API are exported only
// once InitTracing has run with a DSN.
package observability

import (
	"context"
	"strings"

	"github.com/mahotsav/championship-admin/internal/config"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// InitTracing configures Uptrace export. The returned shutdown flushes pending
// spans and is safe to call when tracing is disabled.
func InitTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled {
		logger.Debug("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Warn("tracing disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("tracing enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return uptrace.Shutdown
}
