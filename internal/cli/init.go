// Package cli wires the client together and hosts the terminal views: thin
// subcommand handlers that call the stores and service modules and map errors
// to user-facing messages.
package cli

import (
	"log/slog"
	"os"

	"budget/internal/config"
	applog "budget/internal/log"
	"budget/internal/localstore"

	"github.com/joho/godotenv"
)

// SetupLogger initializes structured logging at the given level and installs
// it as the default logger.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStateStore opens the configured local state store.
// Returns the store or exits the process on failure.
func OpenStateStore(logger *applog.Logger, cfg *config.Config) localstore.Store {
	store, err := localstore.Open(localstore.Backend(cfg.StateBackend), cfg.StateDBPath, logger.Logger)
	if err != nil {
		logger.Error("Failed to open state store", "error", err, "backend", cfg.StateBackend)
		os.Exit(1)
	}
	return store
}
