package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Backend API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Currency
	DefaultCurrency string

	// Local state
	StateBackend string
	StateDBPath  string

	// Routing
	LoginRoute          string
	UserDashboardRoute  string
	AdminDashboardRoute string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		APIBaseURL:  getEnv("BUDGET_API_URL", "http://localhost:8080"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),

		StateBackend: getEnv("STATE_BACKEND", "sqlite"),
		StateDBPath:  getEnv("STATE_DB_PATH", "./data/budget-state.db"),

		LoginRoute:          "/login",
		UserDashboardRoute:  "/dashboard",
		AdminDashboardRoute: "/admin",

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate API base URL
	if c.APIBaseURL == "" {
		errors = append(errors, "API base URL cannot be empty")
	} else if parsedURL, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	// Validate state backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.StateBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid state backend '%s': must be one of %v", c.StateBackend, validBackends))
	}

	// Validate SQLite state path if backend is sqlite
	if c.StateBackend == "sqlite" {
		if c.StateDBPath == "" {
			errors = append(errors, "state database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.StateDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create state database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate default currency
	if len(c.DefaultCurrency) != 3 {
		errors = append(errors, fmt.Sprintf("invalid default currency '%s': must be a 3-letter code", c.DefaultCurrency))
	}

	// Validate HTTP timeout
	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.ToLower(c.LogLevel) == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level string to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
