package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/platform/resilience"
)

// Config stores runtime configuration for the admin client and the fake API.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      string

	APIBaseURL    string
	APITimeout    time.Duration
	APIMaxRetries int
	APICircuit    resilience.CircuitBreakerConfig

	PromotionTopN int
	ImportWorkers int

	FakeAPIAddr  string
	FakeAPISeed  bool
	FakeAPIPprof bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	UptraceEnabled bool
	UptraceDSN     string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := logging.FormatConsole
	if appEnv == EnvProd {
		logFormatDefault = logging.FormatJSON
	}
	logFormat, err := parseLogFormat(getEnv("LOG_FORMAT", logFormatDefault))
	if err != nil {
		return Config{}, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("CHAMPIONSHIP_API_BASE_URL", "http://localhost:8080/api")), "/")
	if parsed, err := url.Parse(baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_BASE_URL must be an absolute URL, got %q", baseURL)
	}

	apiTimeout, err := time.ParseDuration(getEnv("CHAMPIONSHIP_API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_TIMEOUT must be > 0")
	}

	apiMaxRetries, err := getEnvAsInt("CHAMPIONSHIP_API_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_MAX_RETRIES: %w", err)
	}
	if apiMaxRetries < 0 {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_MAX_RETRIES must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("CHAMPIONSHIP_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("CHAMPIONSHIP_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("CHAMPIONSHIP_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("CHAMPIONSHIP_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAMPIONSHIP_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("CHAMPIONSHIP_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	promotionTopN, err := getEnvAsInt("PROMOTION_TOP_N", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROMOTION_TOP_N: %w", err)
	}
	if promotionTopN < 1 {
		return Config{}, fmt.Errorf("PROMOTION_TOP_N must be >= 1")
	}

	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}
	if importWorkers < 1 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be >= 1")
	}

	fakeAPISeed, err := strconv.ParseBool(getEnv("FAKE_API_SEED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FAKE_API_SEED: %w", err)
	}
	fakeAPIPprof, err := strconv.ParseBool(getEnv("FAKE_API_PPROF", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FAKE_API_PPROF: %w", err)
	}
	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	readTimeout, err := time.ParseDuration(getEnv("FAKE_API_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FAKE_API_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("FAKE_API_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FAKE_API_WRITE_TIMEOUT: %w", err)
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "championship-admin"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:      logFormat,
		APIBaseURL:     baseURL,
		APITimeout:     apiTimeout,
		APIMaxRetries:  apiMaxRetries,
		APICircuit: resilience.CircuitBreakerConfig{
			Enabled:          circuitEnabled,
			FailureThreshold: circuitFailureCount,
			OpenTimeout:      circuitOpenTimeout,
			HalfOpenMaxReq:   circuitHalfOpenMaxReq,
		},
		PromotionTopN: promotionTopN,
		ImportWorkers: importWorkers,
		FakeAPIAddr:   getEnv("FAKE_API_ADDR", ":8080"),
		FakeAPISeed:   fakeAPISeed,
		FakeAPIPprof:  fakeAPIPprof,
		ReadTimeout:   readTimeout,
		WriteTimeout:  writeTimeout,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     strings.TrimSpace(os.Getenv("UPTRACE_DSN")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case logging.FormatJSON, logging.FormatConsole:
		return value, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}
