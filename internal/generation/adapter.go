package generation

import (
	"context"
)

// Output is the result of one adapter invocation. Exactly one field is
// populated, matching the kind the adapter was registered under: text
// adapters fill Text, media adapters fill URL.
type Output struct {
	Text string
	URL  string
}

// Adapter performs or stubs a single generation call for one
// (kind, provider) pair. Implementations pass the prompt through
// unvalidated, never mutate local state, and fail only with
// ErrUpstreamFailure or ErrNotConfigured wrapped errors. The "unknown
// provider" case is the dispatcher's responsibility, never an adapter's.
type Adapter interface {
	Generate(ctx context.Context, prompt string) (Output, error)
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc func(ctx context.Context, prompt string) (Output, error)

// Generate implements Adapter.
func (f AdapterFunc) Generate(ctx context.Context, prompt string) (Output, error) {
	return f(ctx, prompt)
}
