package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

// PostgresStore implements HistoryStore using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS judgments (
			seq SERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			prompt TEXT,
			choice TEXT NOT NULL,
			reasoning TEXT,
			payload JSONB NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_judgments_choice ON judgments(choice);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			slog.Debug("judgments migration step failed", "error", err)
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Append inserts entry along with its full JSON payload.
func (s *PostgresStore) Append(entry Entry) error {
	payload, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	query := `INSERT INTO judgments (id, created_at, prompt, choice, reasoning, payload) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.db.Exec(query, entry.ID, entry.Timestamp, entry.Prompt, entry.Choice, entry.Reasoning, payload); err != nil {
		return fmt.Errorf("failed to insert judgment: %w", err)
	}
	return nil
}

// Recent retrieves the most recent judgments
func (s *PostgresStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT payload FROM judgments ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query judgments: %w", err)
	}
	return scanEntries(rows)
}
