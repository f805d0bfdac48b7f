package store

import (
	"database/sql"
	"fmt"
	"time"
)

// UsageRecord holds the persisted usage history for one command id.
type UsageRecord struct {
	CommandID   string
	AccessCount int
	// LastAccess is epoch seconds of the most recent activation; zero
	// for commands never used.
	LastAccess float64
}

// RecordUsage bumps access_count and last_access for the command id in
// one statement, so the two fields can never drift apart.
func (s *Store) RecordUsage(commandID string, at time.Time) error {
	query := `
		INSERT INTO usage (command_id, access_count, last_access)
		VALUES (?, 1, ?)
		ON CONFLICT(command_id) DO UPDATE SET
			access_count = access_count + 1,
			last_access = excluded.last_access
	`
	_, err := s.db.Exec(query, commandID, float64(at.UnixNano())/1e9)
	if err != nil {
		return fmt.Errorf("failed to record usage for %q: %w", commandID, err)
	}
	return nil
}

// UsageRecordFor returns the usage record for a command id. Commands
// never used get a zero record, not an error.
func (s *Store) UsageRecordFor(commandID string) (UsageRecord, error) {
	rec := UsageRecord{CommandID: commandID}
	query := `SELECT access_count, last_access FROM usage WHERE command_id = ?`
	err := s.db.QueryRow(query, commandID).Scan(&rec.AccessCount, &rec.LastAccess)
	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("failed to get usage for %q: %w", commandID, err)
	}
	return rec, nil
}

// AllUsage returns every usage record, used to rank the catalog in one
// read instead of a query per command.
func (s *Store) AllUsage() (map[string]UsageRecord, error) {
	rows, err := s.db.Query(`SELECT command_id, access_count, last_access FROM usage`)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]UsageRecord)
	for rows.Next() {
		var rec UsageRecord
		if err := rows.Scan(&rec.CommandID, &rec.AccessCount, &rec.LastAccess); err != nil {
			return nil, err
		}
		records[rec.CommandID] = rec
	}
	return records, rows.Err()
}
