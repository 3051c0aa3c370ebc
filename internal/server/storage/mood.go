package storage

import (
	"context"

	"github.com/iudanet/solace/internal/models"
)

// MoodStorage defines the interface for mood-entry persistence. The store is
// append-only: entries are never mutated or deleted by the application.
type MoodStorage interface {
	// AppendMood stores a new mood entry. entry.NoteCiphertext must already
	// be encrypted; the store never sees note plaintext.
	AppendMood(ctx context.Context, entry *models.MoodEntry) error

	// ListMoods returns the user's mood entries, newest first.
	ListMoods(ctx context.Context, userID int64) ([]*models.MoodEntry, error)
}
