package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	adapter := NewStubTextAdapter("Test")

	registry.Register(domain.KindText, "testprov", adapter)

	got, ok := registry.Lookup(domain.KindText, "testprov")
	require.True(t, ok, "expected adapter to be registered")

	out, err := got.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "[Test] hello (stub)", out.Text)
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(domain.KindText, "known", NewStubTextAdapter("Known"))

	tests := []struct {
		name     string
		kind     domain.ContentKind
		provider string
	}{
		{name: "unknown provider for known kind", kind: domain.KindText, provider: "nope"},
		{name: "known provider for other kind", kind: domain.KindImage, provider: "known"},
		{name: "both unknown", kind: domain.KindVideo, provider: "nope"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := registry.Lookup(tc.kind, tc.provider)
			assert.False(t, ok)
		})
	}
}

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(domain.KindText, "dup", NewStubTextAdapter("A"))

	assert.Panics(t, func() {
		registry.Register(domain.KindText, "dup", NewStubTextAdapter("B"))
	})
}

func TestRegistryNilAdapterPanics(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	assert.Panics(t, func() {
		registry.Register(domain.KindText, "nil", nil)
	})
}

func TestRegistryProviders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(domain.KindText, "openai", NewStubTextAdapter("OpenAI"))
	registry.Register(domain.KindText, "gemini", NewStubTextAdapter("Gemini"))
	registry.Register(domain.KindImage, "openai", NewStubMediaAdapter("https://example.com/img"))

	providers := registry.Providers(domain.KindText)
	assert.ElementsMatch(t, []string{"openai", "gemini"}, providers)
}
