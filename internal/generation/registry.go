package generation

import (
	"fmt"
	"sync"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// registryKey identifies one adapter registration.
type registryKey struct {
	kind     domain.ContentKind
	provider string
}

// Registry maps (kind, provider) pairs to adapters. It is populated at
// startup and read-only afterwards; the lock only guards against a
// misbehaving late registration.
type Registry struct {
	mu       sync.RWMutex
	adapters map[registryKey]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[registryKey]Adapter),
	}
}

// Register binds an adapter to the (kind, provider) pair. Registering
// the same pair twice is a programming error and panics, since the
// registration table is static startup configuration.
func (r *Registry) Register(kind domain.ContentKind, provider string, adapter Adapter) {
	if adapter == nil {
		panic("generation: nil adapter registered")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{kind: kind, provider: provider}
	if _, exists := r.adapters[key]; exists {
		panic(fmt.Sprintf("generation: adapter already registered for %s/%s", kind, provider))
	}
	r.adapters[key] = adapter
}

// Lookup returns the adapter for the (kind, provider) pair, or false if
// no adapter is registered. An unregistered pair is a normal runtime
// condition (open provider set), not an error.
func (r *Registry) Lookup(kind domain.ContentKind, provider string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[registryKey{kind: kind, provider: provider}]
	return adapter, ok
}

// Providers returns the providers registered for the given kind, in no
// particular order. Used for logging at startup.
func (r *Registry) Providers(kind domain.ContentKind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var providers []string
	for key := range r.adapters {
		if key.kind == kind {
			providers = append(providers, key.provider)
		}
	}
	return providers
}
