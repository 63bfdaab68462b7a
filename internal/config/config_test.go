package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.BackendBaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected BackendBaseURL: %q", cfg.BackendBaseURL)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if !cfg.PollEnabled || cfg.PollInterval != 10*time.Second || cfg.PollWorkers != 4 {
		t.Fatalf("unexpected poll defaults: enabled=%v interval=%s workers=%d",
			cfg.PollEnabled, cfg.PollInterval, cfg.PollWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS defaults: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_BackendSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("BACKEND_BASE_URL", "https://api.ligarenca.cl")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("BACKEND_MAX_RETRIES", "2")
	t.Setenv("BACKEND_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BackendBaseURL != "https://api.ligarenca.cl" {
		t.Fatalf("unexpected BackendBaseURL: %q", cfg.BackendBaseURL)
	}
	if cfg.BackendTimeout != 5*time.Second {
		t.Fatalf("unexpected BackendTimeout: %s", cfg.BackendTimeout)
	}
	if cfg.BackendMaxRetries != 2 {
		t.Fatalf("unexpected BackendMaxRetries: %d", cfg.BackendMaxRetries)
	}
	if cfg.BackendCircuitFailureCount != 3 {
		t.Fatalf("unexpected BackendCircuitFailureCount: %d", cfg.BackendCircuitFailureCount)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_RejectsInvalidDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("POLL_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unparseable POLL_INTERVAL")
	}
}
