package config

import (
	"testing"
	"time"

	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "CHAMPIONSHIP_API_BASE_URL", "CHAMPIONSHIP_API_TIMEOUT",
		"CHAMPIONSHIP_API_MAX_RETRIES", "CHAMPIONSHIP_API_CIRCUIT_ENABLED", "PROMOTION_TOP_N", "IMPORT_WORKERS", "FAKE_API_ADDR",
		"FAKE_API_PPROF", "UPTRACE_ENABLED", "UPTRACE_DSN",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev || cfg.LogFormat != logging.FormatConsole || cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected env defaults: %+v", cfg)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected base url: %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second || cfg.APIMaxRetries != 0 {
		t.Fatalf("unexpected transport defaults: timeout=%s retries=%d", cfg.APITimeout, cfg.APIMaxRetries)
	}
	if !cfg.APICircuit.Enabled || cfg.APICircuit.FailureThreshold != 5 || cfg.APICircuit.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.APICircuit)
	}
	if cfg.PromotionTopN != 4 || cfg.ImportWorkers != 4 || cfg.FakeAPIAddr != ":8080" {
		t.Fatalf("unexpected feature defaults: %+v", cfg)
	}
	if cfg.FakeAPIPprof || cfg.UptraceEnabled || cfg.UptraceDSN != "" {
		t.Fatalf("profiling and tracing must be off by default: %+v", cfg)
	}
}

func TestLoad_ProdDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHAMPIONSHIP_API_BASE_URL", "https://championship.example.com/api/")
	t.Setenv("CHAMPIONSHIP_API_TIMEOUT", "3s")
	t.Setenv("CHAMPIONSHIP_API_MAX_RETRIES", "2")
	t.Setenv("CHAMPIONSHIP_API_CIRCUIT_ENABLED", "false")
	t.Setenv("PROMOTION_TOP_N", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIBaseURL != "https://championship.example.com/api" {
		t.Fatalf("trailing slash should be trimmed: %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 3*time.Second || cfg.APIMaxRetries != 2 || cfg.APICircuit.Enabled {
		t.Fatalf("unexpected transport overrides: %+v", cfg)
	}
	if cfg.PromotionTopN != 8 || cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "relative base url", key: "CHAMPIONSHIP_API_BASE_URL", value: "/api"},
		{name: "zero timeout", key: "CHAMPIONSHIP_API_TIMEOUT", value: "0s"},
		{name: "negative retries", key: "CHAMPIONSHIP_API_MAX_RETRIES", value: "-1"},
		{name: "zero failure count", key: "CHAMPIONSHIP_API_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "zero top n", key: "PROMOTION_TOP_N", value: "0"},
		{name: "non numeric workers", key: "IMPORT_WORKERS", value: "many"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "non boolean uptrace flag", key: "UPTRACE_ENABLED", value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
