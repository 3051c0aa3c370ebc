package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/solace/internal/content"
	"github.com/iudanet/solace/pkg/api"
)

// ContentHandler serves the static wellness content
type ContentHandler struct {
	logger *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		logger: logger,
	}
}

// Meditation handles GET /api/v1/meditation
func (h *ContentHandler) Meditation(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.MeditationResponse{MeditationText: content.MeditationText}, http.StatusOK)
}

// WellnessPlan handles GET /api/v1/wellness-plan
func (h *ContentHandler) WellnessPlan(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.WellnessPlanResponse{PlanText: content.WellnessPlanText}, http.StatusOK)
}
