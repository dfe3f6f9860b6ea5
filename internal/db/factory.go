package db

import (
	"fmt"
	"strings"
)

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type string // "jsonl", "sqlite" or "postgres"
	Path string // File path for jsonl and SQLite, DSN for Postgres
}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "", "jsonl", "json":
		if config.Path == "" {
			config.Path = DefaultJudgmentFile
		}
		return NewJSONLStore(config.Path)
	case "postgres", "postgresql":
		if config.Path == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.Path)
	case "sqlite", "sqlite3":
		if config.Path == "" {
			config.Path = DefaultSQLitePath
		}
		return NewSQLiteStore(config.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, config.Type)
	}
}
