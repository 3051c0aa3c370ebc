// Package chat implements the orchestrator that turns an authorized message
// into a reply: empty-input short circuit, crisis interception before any
// LLM call, streamed-fragment accumulation, and conversion of provider
// faults into user-safe results.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/solace/internal/safety"
)

// Completer is the external LLM collaborator. Implementations stream the
// reply as text fragments through onFragment; returning an error from the
// callback aborts the stream. The orchestrator bounds every call with a
// timeout, so implementations must respect ctx cancellation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, onFragment func(text string) error) error
}

// ResultKind tags the outcome of HandleMessage. Every kind is a designed
// outcome, not an exception: callers must handle each one.
type ResultKind int

const (
	// KindReply is a normal AI-generated reply.
	KindReply ResultKind = iota
	// KindEmptyInput asks the client to provide a message.
	KindEmptyInput
	// KindEscalation is the safety-first outcome: fixed supportive text plus
	// helpline resources, produced without invoking the LLM.
	KindEscalation
	// KindProviderError reports an LLM failure in a user-safe form.
	KindProviderError
)

// Result is the orchestrator's tagged outcome.
type Result struct {
	Kind      ResultKind
	Reply     string
	Resources []safety.Resource // non-empty only for KindEscalation
	Cause     string            // human-readable provider failure, KindProviderError only
}

const (
	// emptyInputReply mirrors the client-facing wording for a missing message.
	emptyInputReply = "Please provide a message."

	// fallbackReply is returned when the model streams no text at all.
	fallbackReply = "I'm here with you, but I couldn't come up with a response just now. Could you try rephrasing?"

	// systemPromptFormat parameterizes the companion prompt by reply language.
	systemPromptFormat = "You are a mental health companion. Be empathetic and supportive and kind. " +
		"Limit responses to 200 words. Respond in %s."

	// DefaultLanguage is used when the client does not request one.
	DefaultLanguage = "English"
)

// Service is the chat orchestrator.
type Service struct {
	completer Completer
	logger    *slog.Logger
	timeout   time.Duration
}

// NewService creates a chat orchestrator. timeout bounds each completer call;
// a stalled provider surfaces as a provider error, never a hang.
func NewService(completer Completer, timeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		completer: completer,
		logger:    logger,
		timeout:   timeout,
	}
}

// HandleMessage produces the reply for an authorized chat message.
// Order is fixed: empty-input check, crisis detection, then the LLM call.
// On a positive detection the completer is never invoked for this request.
func (s *Service) HandleMessage(ctx context.Context, userID int64, message, language string) Result {
	if strings.TrimSpace(message) == "" {
		return Result{Kind: KindEmptyInput, Reply: emptyInputReply}
	}

	if safety.Detect(message) {
		s.logger.InfoContext(ctx, "crisis escalation triggered", slog.Int64("user_id", userID))
		return Result{
			Kind:      KindEscalation,
			Reply:     safety.EscalationMessage,
			Resources: safety.Resources,
		}
	}

	if language == "" {
		language = DefaultLanguage
	}
	systemPrompt := fmt.Sprintf(systemPromptFormat, language)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var reply strings.Builder
	err := s.completer.Complete(ctx, systemPrompt, message, func(text string) error {
		reply.WriteString(text)
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "completer failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return Result{
			Kind:  KindProviderError,
			Cause: fmt.Sprintf("error communicating with AI service: %v", err),
		}
	}

	if reply.Len() == 0 {
		return Result{Kind: KindReply, Reply: fallbackReply}
	}

	return Result{Kind: KindReply, Reply: reply.String()}
}
