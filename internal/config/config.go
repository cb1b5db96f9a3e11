package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	SessionTTL      time.Duration
	RedisURL        string
	ShutdownTimeout time.Duration
	OTelLogsEnabled bool
}

// LoadDotEnv loads environment variables from path (".env" when empty) if
// the file exists. Variables already set in the process are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}

// Load reads Config from the environment, applying defaults for unset keys.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	var err error

	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.OTelLogsEnabled, err = boolEnv("OTEL_LOGS_ENABLED", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
