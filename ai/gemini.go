// Package ai contains the generation backend adapters.
package ai

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"fraibot/contract"
	"fraibot/errors"
)

var _ contract.Generator = (*Gemini)(nil)

// Gemini generates assistant text through the Google generative language API.
// The composed prompt already carries the persona and history, so requests go
// out as a single user content.
type Gemini struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

// Generate returns the model's text for a composed prompt. Any backend or
// network failure comes back wrapped in ErrGeneration so the boundary can
// substitute a user-visible fallback instead of the raw error.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrGeneration, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", errors.ErrGeneration)
	}

	text := extractText(resp.Candidates[0].Content)
	if text == "" {
		return "", fmt.Errorf("%w: response has no text parts", errors.ErrGeneration)
	}
	g.log.Debug("Generation completed", "model", g.model, "chars", len(text))
	return text, nil
}

func extractText(content *genai.Content) string {
	var text string
	for _, part := range content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
