package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

func encodeEntry(entry Entry) (string, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to encode entry: %w", err)
	}
	return string(payload), nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var entry Entry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode judgment: %w", err)
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}
