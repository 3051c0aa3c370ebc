package api

import "time"

// MoodRequest is the payload for logging a mood
type MoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note,omitempty"` // stored encrypted at rest
}

// MoodResponse is returned on a successful mood log
type MoodResponse struct {
	Message string `json:"message"`
}

// MoodEntry is a single decrypted mood entry in a history listing
type MoodEntry struct {
	ID         string    `json:"id"`
	Mood       string    `json:"mood"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// MoodListResponse is the mood history envelope
type MoodListResponse struct {
	Entries []MoodEntry `json:"entries"`
}

// MeditationResponse carries the static meditation script
type MeditationResponse struct {
	MeditationText string `json:"meditation_text"`
}

// WellnessPlanResponse carries the static wellness plan
type WellnessPlanResponse struct {
	PlanText string `json:"plan_text"`
}
