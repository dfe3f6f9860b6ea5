package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements HistoryStore using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS judgments (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			prompt TEXT,
			choice TEXT NOT NULL,
			reasoning TEXT,
			payload TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_judgments_choice ON judgments(choice);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts entry along with its full JSON payload.
func (s *SQLiteStore) Append(entry Entry) error {
	payload, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	query := `INSERT INTO judgments (id, created_at, prompt, choice, reasoning, payload) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.db.Exec(query, entry.ID, entry.Timestamp, entry.Prompt, entry.Choice, entry.Reasoning, payload); err != nil {
		return fmt.Errorf("failed to insert judgment: %w", err)
	}
	return nil
}

// Recent retrieves the most recent judgments
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT payload FROM judgments ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query judgments: %w", err)
	}
	return scanEntries(rows)
}
