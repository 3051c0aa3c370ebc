package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/solace/internal/chat"
	"github.com/iudanet/solace/internal/server/metrics"
	"github.com/iudanet/solace/pkg/api"
)

// ChatHandler handles chat requests
type ChatHandler struct {
	logger  *slog.Logger
	chat    *chat.Service
	metrics metrics.Recorder
}

// NewChatHandler creates a new chat handler
func NewChatHandler(logger *slog.Logger, chatService *chat.Service, recorder metrics.Recorder) *ChatHandler {
	return &ChatHandler{
		logger:  logger,
		chat:    chatService,
		metrics: recorder,
	}
}

// Chat handles POST /api/v1/chat.
// The request has already passed the authorization gate; the user id comes
// from the request context.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode chat request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.chat.HandleMessage(ctx, userID, req.Message, req.Language)

	switch result.Kind {
	case chat.KindEmptyInput:
		sendJSON(h.logger, w, api.ChatResponse{Reply: result.Reply}, http.StatusBadRequest)

	case chat.KindEscalation:
		h.metrics.RecordEscalation()
		resources := make([]api.Resource, 0, len(result.Resources))
		for _, res := range result.Resources {
			resources = append(resources, api.Resource{Name: res.Name, Contact: res.Contact})
		}
		// Escalation is a successful outcome: the client renders the
		// resources, so this must never look like a failure.
		sendJSON(h.logger, w, api.ChatResponse{
			Reply:     result.Reply,
			Escalate:  true,
			Resources: resources,
		}, http.StatusOK)

	case chat.KindProviderError:
		h.metrics.RecordLLMFailure()
		sendError(h.logger, w, result.Cause, http.StatusBadGateway)

	default:
		h.metrics.RecordLLMCall()
		sendJSON(h.logger, w, api.ChatResponse{Reply: result.Reply}, http.StatusOK)
	}
}
