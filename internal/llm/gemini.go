// Package llm provides the Gemini-backed implementation of the chat
// completer. It is the only component that talks to the model provider.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiCompleter streams completions from the Gemini API. It satisfies
// chat.Completer; the orchestrator owns the timeout, so every network call
// here honors ctx cancellation.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a completer for the given model
// (e.g. "gemini-2.5-flash").
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiCompleter{
		client: client,
		model:  model,
	}, nil
}

// Complete streams the model reply fragment by fragment through onFragment.
// A canceled context aborts the stream between fragments.
func (g *GeminiCompleter) Complete(ctx context.Context, systemPrompt, userMessage string, onFragment func(text string) error) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(userMessage), config) {
		if err != nil {
			return fmt.Errorf("generate content stream: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if text := resp.Text(); text != "" {
			if err := onFragment(text); err != nil {
				return err
			}
		}
	}

	return nil
}
