package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				APIBaseURL:      "http://localhost:8080",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "USD",
				StateBackend:    "sqlite",
				StateDBPath:     "./test-state.db",
				LogLevel:        "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				APIBaseURL:      "https://budget.example.com",
				HTTPTimeout:     30 * time.Second,
				DefaultCurrency: "EUR",
				StateBackend:    "memory",
				LogLevel:        "debug",
			},
			wantErr: false,
		},
		{
			name: "empty API base URL",
			config: Config{
				APIBaseURL:      "",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "USD",
				StateBackend:    "memory",
				LogLevel:        "info",
			},
			wantErr:     true,
			errorString: "API base URL cannot be empty",
		},
		{
			name: "invalid API base URL scheme",
			config: Config{
				APIBaseURL:      "ftp://localhost:8080",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "USD",
				StateBackend:    "memory",
				LogLevel:        "info",
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp'",
		},
		{
			name: "invalid state backend",
			config: Config{
				APIBaseURL:      "http://localhost:8080",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "USD",
				StateBackend:    "redis",
				LogLevel:        "info",
			},
			wantErr:     true,
			errorString: "invalid state backend 'redis'",
		},
		{
			name: "invalid default currency",
			config: Config{
				APIBaseURL:      "http://localhost:8080",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "US",
				StateBackend:    "memory",
				LogLevel:        "info",
			},
			wantErr:     true,
			errorString: "invalid default currency 'US'",
		},
		{
			name: "timeout too short",
			config: Config{
				APIBaseURL:      "http://localhost:8080",
				HTTPTimeout:     100 * time.Millisecond,
				DefaultCurrency: "USD",
				StateBackend:    "memory",
				LogLevel:        "info",
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:      "http://localhost:8080",
				HTTPTimeout:     15 * time.Second,
				DefaultCurrency: "USD",
				StateBackend:    "memory",
				LogLevel:        "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.StateBackend == "sqlite" {
				tt.config.StateDBPath = t.TempDir() + "/state.db"
			}

			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"BUDGET_API_URL", "DEFAULT_CURRENCY", "STATE_BACKEND", "STATE_DB_PATH", "HTTP_TIMEOUT", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.DefaultCurrency != "USD" {
		t.Errorf("DefaultCurrency = %q, want USD", cfg.DefaultCurrency)
	}
	if cfg.StateBackend != "sqlite" {
		t.Errorf("StateBackend = %q, want sqlite", cfg.StateBackend)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.LoginRoute != "/login" {
		t.Errorf("LoginRoute = %q, want /login", cfg.LoginRoute)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BUDGET_API_URL", "https://api.example.com")
	t.Setenv("DEFAULT_CURRENCY", "EUR")
	t.Setenv("STATE_BACKEND", "memory")
	t.Setenv("HTTP_TIMEOUT", "45s")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.DefaultCurrency != "EUR" {
		t.Errorf("DefaultCurrency = %q", cfg.DefaultCurrency)
	}
	if cfg.StateBackend != "memory" {
		t.Errorf("StateBackend = %q", cfg.StateBackend)
	}
	if cfg.HTTPTimeout != 45*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}
