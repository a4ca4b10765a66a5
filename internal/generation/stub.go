package generation

import (
	"context"
	"fmt"
)

// Stub adapters return deterministic placeholder values for providers
// whose real integration does not exist yet. They are registered exactly
// like real adapters so each one can be swapped out without touching the
// dispatcher.

// NewStubTextAdapter returns a text adapter that echoes the prompt back
// annotated with the provider's display name.
func NewStubTextAdapter(displayName string) Adapter {
	return AdapterFunc(func(ctx context.Context, prompt string) (Output, error) {
		return Output{Text: fmt.Sprintf("[%s] %s (stub)", displayName, prompt)}, nil
	})
}

// NewStubMediaAdapter returns a media adapter that resolves every prompt
// to the given fixed URL.
func NewStubMediaAdapter(url string) Adapter {
	return AdapterFunc(func(ctx context.Context, prompt string) (Output, error) {
		return Output{URL: url}, nil
	})
}
