package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const defaultHost = "0.0.0.0"
const defaultPort = "8000"
const defaultAppEnv = "development"
const defaultLogLevel = "info"
const defaultCORSOrigins = "*"
const defaultShutdownTimeout = 10 * time.Second
const defaultReadHeaderTimeout = 5 * time.Second

type Config struct {
	Host               string
	Port               string
	AppEnv             string
	LogLevel           string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
	ReadHeaderTimeout  time.Duration
	TrustProxyHeaders  bool
}

// LoadDotEnv reads .env files into the environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

func Load() (Config, error) {
	var errs []string

	port := envOrDefault("PORT", defaultPort)
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		errs = append(errs, fmt.Sprintf("PORT must be a number between 1 and 65535, got %q", port))
	}

	logLevel := strings.ToLower(envOrDefault("LOG_LEVEL", defaultLogLevel))
	if _, err := zapcore.ParseLevel(logLevel); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL is invalid: %q", logLevel))
	}

	shutdownTimeout, err := durationOrDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		errs = append(errs, err.Error())
	}

	readHeaderTimeout, err := durationOrDefault("READ_HEADER_TIMEOUT", defaultReadHeaderTimeout)
	if err != nil {
		errs = append(errs, err.Error())
	}

	trustProxyHeaders := false
	if raw := strings.TrimSpace(os.Getenv("TRUST_PROXY_HEADERS")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("TRUST_PROXY_HEADERS must be a boolean, got %q", raw))
		}
		trustProxyHeaders = parsed
	}

	if len(errs) > 0 {
		return Config{}, errors.New(strings.Join(errs, "; "))
	}

	return Config{
		Host:               envOrDefault("HOST", defaultHost),
		Port:               port,
		AppEnv:             strings.ToLower(envOrDefault("APP_ENV", defaultAppEnv)),
		LogLevel:           logLevel,
		CORSAllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		ShutdownTimeout:    shutdownTimeout,
		ReadHeaderTimeout:  readHeaderTimeout,
		TrustProxyHeaders:  trustProxyHeaders,
	}, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
