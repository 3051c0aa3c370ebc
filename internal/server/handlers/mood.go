package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/solace/internal/crypto"
	"github.com/iudanet/solace/internal/models"
	"github.com/iudanet/solace/internal/server/storage"
	"github.com/iudanet/solace/pkg/api"
)

// MoodHandler handles mood logging and history requests
type MoodHandler struct {
	logger *slog.Logger
	moods  storage.MoodStorage
	cipher *crypto.Cipher
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(logger *slog.Logger, moods storage.MoodStorage, cipher *crypto.Cipher) *MoodHandler {
	return &MoodHandler{
		logger: logger,
		moods:  moods,
		cipher: cipher,
	}
}

// LogMood handles POST /api/v1/mood
func (h *MoodHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode mood request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Mood == "" {
		sendError(h.logger, w, "mood is required", http.StatusBadRequest)
		return
	}

	// The note is encrypted before it gets anywhere near the store. Its
	// content is never logged.
	var noteCiphertext string
	if req.Note != "" {
		encrypted, err := h.cipher.EncryptToBase64([]byte(req.Note))
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to encrypt mood note", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		noteCiphertext = encrypted
	}

	entry := &models.MoodEntry{
		ID:             uuid.New().String(),
		UserID:         userID,
		Mood:           req.Mood,
		NoteCiphertext: noteCiphertext,
		RecordedAt:     time.Now().UTC(),
	}

	if err := h.moods.AppendMood(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to append mood entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "mood logged",
		slog.Int64("user_id", userID),
		slog.String("mood", req.Mood))

	sendJSON(h.logger, w, api.MoodResponse{Message: "Mood logged successfully"}, http.StatusCreated)
}

// ListMoods handles GET /api/v1/mood
func (h *MoodHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.moods.ListMoods(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list mood entries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MoodListResponse{Entries: make([]api.MoodEntry, 0, len(entries))}
	for _, entry := range entries {
		item := api.MoodEntry{
			ID:         entry.ID,
			Mood:       entry.Mood,
			RecordedAt: entry.RecordedAt,
		}
		if entry.NoteCiphertext != "" {
			note, err := h.cipher.DecryptFromBase64(entry.NoteCiphertext)
			if err != nil {
				// An undecryptable note is omitted, not fatal for the listing.
				h.logger.WarnContext(ctx, "failed to decrypt mood note",
					slog.String("entry_id", entry.ID),
					slog.Any("error", err))
			} else {
				item.Note = string(note)
			}
		}
		resp.Entries = append(resp.Entries, item)
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
