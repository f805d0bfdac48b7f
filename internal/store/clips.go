package store

import (
	"fmt"
	"time"
)

// Clip is one clipboard history entry.
type Clip struct {
	ID       int64
	Content  string
	CopiedAt time.Time
}

// AddClip inserts a clipboard entry, or refreshes its timestamp when
// the same content was already captured (re-copying moves it to the
// top of the history instead of duplicating it).
func (s *Store) AddClip(content string, at time.Time) error {
	query := `
		INSERT INTO clips (content, copied_at) VALUES (?, ?)
		ON CONFLICT(content) DO UPDATE SET copied_at = excluded.copied_at
	`
	_, err := s.db.Exec(query, content, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to add clip: %w", err)
	}
	return nil
}

// RecentClips returns up to limit clips, newest first.
func (s *Store) RecentClips(limit int) ([]Clip, error) {
	query := `SELECT id, content, copied_at FROM clips ORDER BY copied_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get clips: %w", err)
	}
	defer rows.Close()

	var clips []Clip
	for rows.Next() {
		var c Clip
		if err := rows.Scan(&c.ID, &c.Content, &c.CopiedAt); err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	return clips, rows.Err()
}

// TrimClips deletes everything beyond the newest max entries.
func (s *Store) TrimClips(max int) error {
	query := `
		DELETE FROM clips WHERE id NOT IN (
			SELECT id FROM clips ORDER BY copied_at DESC, id DESC LIMIT ?
		)
	`
	_, err := s.db.Exec(query, max)
	if err != nil {
		return fmt.Errorf("failed to trim clips: %w", err)
	}
	return nil
}
