package db

import "errors"

// ErrUnsupportedStore is returned by NewStore for an unknown backend type.
var ErrUnsupportedStore = errors.New("unsupported store type")

const (
	// DefaultJudgmentFile receives workbench judgments.
	DefaultJudgmentFile = "rlhf_training_data.json"
	// DefaultRankingFile receives preference rankings.
	DefaultRankingFile = "rlhf_log.json"
	// DefaultSQLitePath is used when the sqlite store has no path.
	DefaultSQLitePath = ".auditor.db"
)

// Signals holds the complexity labels of both candidates at decision time.
type Signals struct {
	ModelA string `json:"model_a"`
	ModelB string `json:"model_b"`
}

// Metadata holds the response lengths recorded by a ranking.
type Metadata struct {
	ModelALen int `json:"model_a_len"`
	ModelBLen int `json:"model_b_len"`
}

// Entry is one preference record. Exactly one of Signals or Metadata is set.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Prompt    string    `json:"prompt,omitempty"`
	Choice    string    `json:"choice"`
	Reasoning string    `json:"reasoning"`
	Signals   *Signals  `json:"signals,omitempty"`
	Metadata  *Metadata `json:"metadata,omitempty"`
}

// Store is an append-only sink for entries.
type Store interface {
	Append(entry Entry) error
	Close() error
}

// HistoryStore is a Store that can also read back what it recorded.
type HistoryStore interface {
	Store
	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]Entry, error)
}
