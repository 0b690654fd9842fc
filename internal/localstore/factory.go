package localstore

import (
	"fmt"
	"log/slog"
)

// Backend identifies a state store implementation.
type Backend string

const (
	SQLiteBackend Backend = "sqlite"
	MemoryBackend Backend = "memory"
)

// IsValid reports whether the backend name is known.
func (b Backend) IsValid() bool {
	switch b {
	case SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// Open creates the state store selected by backend. dbPath is only used by
// the sqlite backend.
func Open(backend Backend, dbPath string, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !backend.IsValid() {
		return nil, fmt.Errorf("invalid state backend: %s", backend)
	}

	switch backend {
	case SQLiteBackend:
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite state store: %w", err)
		}
		logger.Info("Initialized sqlite state store", "db_path", dbPath)
		return store, nil
	default:
		logger.Info("Initialized memory state store")
		return NewMemoryStore(), nil
	}
}
