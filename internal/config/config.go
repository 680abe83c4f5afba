// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"rosterview/internal/logging"
	"rosterview/internal/roster"
)

// Environment variables read by Load.
const (
	EnvURL         = "ROSTER_URL"
	EnvFile        = "ROSTER_FILE"
	EnvTimeout     = "ROSTER_TIMEOUT" // whole seconds
	EnvLogFile     = "ROSTER_LOG_FILE"
	EnvMetricsAddr = "ROSTER_METRICS_ADDR"
)

// Config holds the settings shared by every command.
type Config struct {
	// Roster source. File wins over URL when set.
	URL     string
	File    string
	Timeout time.Duration

	// Observability
	LogFile     string
	MetricsAddr string // empty disables the /metrics listener
}

// Load reads env files (default ".env") if present, then the environment.
// Variables already set in the environment take precedence over env files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	timeout, err := getEnvAsSeconds(EnvTimeout, roster.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		URL:         getEnv(EnvURL, roster.DefaultURL),
		File:        getEnv(EnvFile, ""),
		Timeout:     timeout,
		LogFile:     getEnv(EnvLogFile, logging.DefaultPath()),
		MetricsAddr: getEnv(EnvMetricsAddr, ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(valueStr)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: want a positive number of seconds, got %q", key, valueStr)
	}
	return time.Duration(n) * time.Second, nil
}
