package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// Degraded-result placeholders. Media placeholders are fixed URLs so a
// failed or unknown generation still renders something in a client; the
// failure itself is annotated into the prompt so it stays visible in
// history.
const (
	unknownMediaPlaceholder = "https://placehold.co/400x300?text=Unknown+Provider"
	failureMediaPlaceholder = "https://placehold.co/400x300?text=AI+Error"
)

// Dispatcher routes a generation request to the adapter registered for
// its (kind, provider) pair and maps adapter failures into degraded
// outputs. Every valid request yields a persistable ContentEntry; the
// single hard-failure case is a text adapter reporting a missing
// credential.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

// NewDispatcher creates a Dispatcher over the given registry.
// If logger is nil, the default logger is used.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if registry == nil {
		panic("generation: nil registry")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger.With(slog.String("component", "dispatcher")),
		timeFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch looks up the adapter for (kind, provider), invokes it, maps
// any failure into a degraded output, and returns the normalized entry.
//
// Failure policy (one rule, applied on every endpoint): a text adapter
// reporting ErrNotConfigured is a hard error, because text generation
// with no credential cannot produce a meaningful placeholder. Everything
// else — unknown providers, upstream failures, unconfigured media
// providers — degrades into a clearly marked placeholder entry.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	kind domain.ContentKind,
	provider string,
	prompt string,
	user string,
	legacy bool,
) (domain.ContentEntry, error) {
	if !kind.IsValid() {
		return domain.ContentEntry{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	params := NormalizeParams{
		Kind:     kind,
		Provider: provider,
		Prompt:   prompt,
		User:     user,
		Legacy:   legacy,
	}

	adapter, ok := d.registry.Lookup(kind, provider)
	if !ok {
		d.logger.Warn("no adapter registered, returning degraded entry",
			slog.String("kind", string(kind)),
			slog.String("provider", provider))
		params.Output, params.Prompt = d.degradeUnknown(kind, provider, prompt)
		return Normalize(params, d.timeFunc()), nil
	}

	output, err := adapter.Generate(ctx, prompt)
	if err != nil {
		if kind == domain.KindText && errors.Is(err, ErrNotConfigured) {
			return domain.ContentEntry{}, fmt.Errorf("text generation via %s: %w", provider, err)
		}

		d.logger.Warn("adapter failed, returning degraded entry",
			slog.String("kind", string(kind)),
			slog.String("provider", provider),
			slog.String("error", err.Error()))
		params.Output, params.Prompt = d.degradeFailure(kind, prompt, err)
		return Normalize(params, d.timeFunc()), nil
	}

	params.Output = output
	return Normalize(params, d.timeFunc()), nil
}

// degradeUnknown builds the placeholder output for an unregistered
// (kind, provider) pair.
func (d *Dispatcher) degradeUnknown(
	kind domain.ContentKind,
	provider string,
	prompt string,
) (Output, string) {
	marker := fmt.Sprintf("[unknown provider: %s]", provider)
	if kind.IsMedia() {
		return Output{URL: unknownMediaPlaceholder}, marker + " " + prompt
	}
	return Output{Text: marker}, prompt
}

// degradeFailure builds the placeholder output for an adapter error.
func (d *Dispatcher) degradeFailure(
	kind domain.ContentKind,
	prompt string,
	err error,
) (Output, string) {
	marker := fmt.Sprintf("[generation error: %v]", err)
	if kind.IsMedia() {
		return Output{URL: failureMediaPlaceholder}, marker + " " + prompt
	}
	return Output{Text: marker}, prompt
}
