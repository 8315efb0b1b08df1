package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "APP_ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "READ_HEADER_TIMEOUT", "TRUST_PROXY_HEADERS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.AppEnv != "development" || cfg.IsProduction() {
		t.Fatalf("unexpected app env %q", cfg.AppEnv)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.TrustProxyHeaders {
		t.Fatal("proxy headers must not be trusted by default")
	}
	if cfg.ShutdownTimeout != 10*time.Second || cfg.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected timeouts %v / %v", cfg.ShutdownTimeout, cfg.ReadHeaderTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", " 9090 ")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Port != "9090" || !cfg.IsProduction() || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.TrustProxyHeaders {
		t.Fatal("expected proxy headers to be trusted")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("READ_HEADER_TIMEOUT", "-1s")
	t.Setenv("TRUST_PROXY_HEADERS", "sometimes")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"PORT", "LOG_LEVEL", "READ_HEADER_TIMEOUT", "TRUST_PROXY_HEADERS"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected error to mention %s, got %q", fragment, err)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv does not override variables that are already present.
	os.Unsetenv("PORT")

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv unexpected error: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected port from .env, got %q", cfg.Port)
	}

	if err := config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
