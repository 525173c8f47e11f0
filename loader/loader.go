// Package loader provides the content-loader capability used to resolve
// resource descriptors into bytes. Each loader handles exactly one
// descriptor kind; the Registry dispatches on the discriminator.
package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwantia/namespace/data"
)

// ContentLoader resolves descriptors of a single kind into bytes.
type ContentLoader interface {
	// Kind returns the descriptor discriminator this loader handles.
	Kind() string

	// Load reads the bytes the descriptor points at. Failures caused by
	// the backing store must wrap data.ErrUnavailable.
	Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error)
}

// Registry holds one loader per descriptor kind.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]ContentLoader
}

// NewRegistry creates a registry holding the given loaders.
func NewRegistry(loaders ...ContentLoader) *Registry {
	registry := &Registry{
		loaders: make(map[string]ContentLoader),
	}
	for _, l := range loaders {
		registry.Register(l)
	}

	return registry
}

// Register adds a loader, replacing any previous loader for the same
// kind.
func (r *Registry) Register(l ContentLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaders[l.Kind()] = l
}

// Resolve dispatches the descriptor to the matching loader. Descriptors
// without a registered loader fail with data.ErrUnavailable.
func (r *Registry) Resolve(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	r.mu.RLock()
	l, exists := r.loaders[descriptor.Kind()]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: no loader registered for descriptor type %q",
			data.ErrUnavailable, descriptor.Kind())
	}

	return l.Load(ctx, descriptor)
}
