package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/solace/internal/models"
)

// AppendMood stores a new mood entry. The note arrives already encrypted.
func (s *Storage) AppendMood(ctx context.Context, entry *models.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, mood, note_ciphertext, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Mood,
		entry.NoteCiphertext,
		entry.RecordedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}

	return nil
}

// ListMoods returns the user's mood entries, newest first
func (s *Storage) ListMoods(ctx context.Context, userID int64) ([]*models.MoodEntry, error) {
	query := `
		SELECT id, user_id, mood, note_ciphertext, recorded_at
		FROM mood_entries
		WHERE user_id = ?
		ORDER BY recorded_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.MoodEntry
	for rows.Next() {
		entry := &models.MoodEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Mood,
			&entry.NoteCiphertext,
			&entry.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mood entries: %w", err)
	}

	return entries, nil
}
