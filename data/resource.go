package data

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ContentResolver turns a descriptor into the bytes it points at. The
// Namespace implements it on top of its loader registry.
type ContentResolver interface {
	Resolve(ctx context.Context, descriptor ResourceDescriptor) ([]byte, error)
}

// Resource pairs one ResourceVersion with one ResourceDescriptor and,
// once resolved, the materialized content. Immutable after construction
// except for content materialization.
type Resource struct {
	// ID is a unique identity assigned at construction.
	ID string

	version    ResourceVersion
	descriptor ResourceDescriptor

	mu      sync.Mutex
	content []byte
	loaded  bool
}

// NewResource creates a resource from an already validated version and a
// descriptor.
func NewResource(version ResourceVersion, descriptor ResourceDescriptor) *Resource {
	return &Resource{
		ID:         uuid.Must(uuid.NewV7()).String(),
		version:    version,
		descriptor: descriptor,
	}
}

// Version returns the version of this resource.
func (r *Resource) Version() ResourceVersion {
	return r.version
}

// Descriptor returns the descriptor of this resource.
func (r *Resource) Descriptor() ResourceDescriptor {
	return r.descriptor
}

// Content resolves the descriptor through the given resolver the first
// time it is called and caches the result for the lifetime of the
// resource. Resolution failures surface as ErrUnavailable and are not
// cached, so a retry may succeed once the backing store recovers.
func (r *Resource) Content(ctx context.Context, resolver ContentResolver) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return r.content, nil
	}

	if resolver == nil {
		return nil, fmt.Errorf("%w: no resolver for descriptor type %q", ErrUnavailable, r.descriptor.Kind())
	}

	content, err := resolver.Resolve(ctx, r.descriptor)
	if err != nil {
		return nil, err
	}

	r.content = content
	r.loaded = true

	return r.content, nil
}

// String renders the resource identity for diagnostics, including the
// unique ID so log lines can tell apart resources sharing a version.
func (r *Resource) String() string {
	return fmt.Sprintf("%s@%s (%s)", r.descriptor.Kind(), r.version.String(), r.ID)
}
