// Package gemini provides a text-generation adapter backed by Google's
// Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/gatluaknyang/guuk-api/internal/generation"
)

// DefaultModel is used when the configuration does not name a model.
const DefaultModel = "gemini-2.0-flash"

// TextAdapter implements generation.Adapter over the Gemini API.
type TextAdapter struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewTextAdapter creates a Gemini text adapter. If apiKey is empty the
// adapter is returned unconfigured: Generate reports
// generation.ErrNotConfigured instead of calling the API. If logger is
// nil, a default logger will be used.
func NewTextAdapter(ctx context.Context, apiKey, model string, logger *slog.Logger) (*TextAdapter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if model == "" {
		model = DefaultModel
	}

	adapter := &TextAdapter{
		model:  model,
		logger: logger.With(slog.String("component", "gemini_adapter")),
	}
	if apiKey == "" {
		return adapter, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	adapter.client = client
	return adapter, nil
}

// Ensure TextAdapter implements generation.Adapter
var _ generation.Adapter = (*TextAdapter)(nil)

// Generate implements generation.Adapter.Generate
func (a *TextAdapter) Generate(ctx context.Context, prompt string) (generation.Output, error) {
	if a.client == nil {
		return generation.Output{}, fmt.Errorf("%w: gemini API key not set", generation.ErrNotConfigured)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		a.logger.Warn("gemini request failed",
			slog.String("model", a.model),
			slog.String("error", err.Error()))
		return generation.Output{}, fmt.Errorf("%w: %v", generation.ErrUpstreamFailure, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return generation.Output{}, fmt.Errorf("%w: empty completion", generation.ErrInvalidResponse)
	}

	return generation.Output{Text: text}, nil
}
