package models

import "time"

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"` // unique
	Email        string    `json:"email"`    // unique, login identifier
	PasswordHash string    `json:"-"`        // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// MoodEntry is a single mood check-in. The note field is persisted only in
// encrypted form (AES-256-GCM, base64 encoded); plaintext never reaches
// storage. Entries are append-only.
type MoodEntry struct {
	ID             string    `json:"id"`      // UUID
	UserID         int64     `json:"user_id"` // owning identity
	Mood           string    `json:"mood"`
	NoteCiphertext string    `json:"-"`
	RecordedAt     time.Time `json:"recorded_at"`
}
