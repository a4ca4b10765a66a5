package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatluaknyang/guuk-api/internal/generation"
)

// Default models, matching what the API serves without an explicit
// model override.
const (
	DefaultTextModel  = "gpt-3.5-turbo"
	DefaultImageModel = "dall-e-3"
)

// TextAdapter implements generation.Adapter via the chat completions
// endpoint.
type TextAdapter struct {
	client *Client
	model  string
}

// NewTextAdapter creates a text adapter over the given client. An empty
// model selects DefaultTextModel.
func NewTextAdapter(client *Client, model string) *TextAdapter {
	if model == "" {
		model = DefaultTextModel
	}
	return &TextAdapter{client: client, model: model}
}

var _ generation.Adapter = (*TextAdapter)(nil)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate implements generation.Adapter.Generate
func (a *TextAdapter) Generate(ctx context.Context, prompt string) (generation.Output, error) {
	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp chatResponse
	if err := a.client.post(ctx, "/chat/completions", payload, &resp); err != nil {
		return generation.Output{}, err
	}

	if len(resp.Choices) == 0 {
		return generation.Output{}, fmt.Errorf("%w: no choices in completion", generation.ErrInvalidResponse)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return generation.Output{}, fmt.Errorf("%w: empty completion", generation.ErrInvalidResponse)
	}

	return generation.Output{Text: text}, nil
}

// ImageAdapter implements generation.Adapter via the image generation
// endpoint.
type ImageAdapter struct {
	client *Client
	model  string
}

// NewImageAdapter creates an image adapter over the given client. An
// empty model selects DefaultImageModel.
func NewImageAdapter(client *Client, model string) *ImageAdapter {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageAdapter{client: client, model: model}
}

var _ generation.Adapter = (*ImageAdapter)(nil)

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Generate implements generation.Adapter.Generate
func (a *ImageAdapter) Generate(ctx context.Context, prompt string) (generation.Output, error) {
	payload := imageRequest{
		Model:  a.model,
		Prompt: prompt,
		N:      1,
		Size:   "1024x1024",
	}

	var resp imageResponse
	if err := a.client.post(ctx, "/images/generations", payload, &resp); err != nil {
		return generation.Output{}, err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return generation.Output{}, fmt.Errorf("%w: no image URL in response", generation.ErrInvalidResponse)
	}

	return generation.Output{URL: resp.Data[0].URL}, nil
}
