package data

import (
	"fmt"
	"sync"
)

// DescriptorField is the key of the type discriminator in a serialized
// descriptor.
const DescriptorField = "type"

// ResourceDescriptor is an opaque, serializable pointer to where a
// resource's bytes actually live. Implementations are plain data; the
// matching ContentLoader turns a descriptor into bytes.
type ResourceDescriptor interface {
	// Kind returns the type discriminator for this variant (e.g. "localfile").
	Kind() string

	// Serialize emits the descriptor as a flat map including the
	// discriminator under DescriptorField.
	Serialize() map[string]any

	// Deserialize populates the descriptor from a serialized map.
	// A discriminator that is present but does not match Kind, or a
	// missing required field, fails with ErrInvalidArgument.
	Deserialize(data map[string]any) error
}

// descriptorFactories maps a discriminator to a constructor for an empty
// descriptor of that variant.
var (
	descriptorMu        sync.RWMutex
	descriptorFactories = make(map[string]func() ResourceDescriptor)
)

// RegisterDescriptor makes a descriptor variant available to
// DecodeDescriptor. Registering the same kind twice replaces the factory.
func RegisterDescriptor(kind string, factory func() ResourceDescriptor) {
	descriptorMu.Lock()
	defer descriptorMu.Unlock()

	descriptorFactories[kind] = factory
}

// DecodeDescriptor dispatches on the discriminator field and decodes the
// matching variant. Unknown or missing discriminators fail with
// ErrInvalidArgument.
func DecodeDescriptor(data map[string]any) (ResourceDescriptor, error) {
	kind, ok := data[DescriptorField].(string)
	if !ok || kind == "" {
		return nil, fmt.Errorf("%w: descriptor is missing a type discriminator", ErrInvalidArgument)
	}

	descriptorMu.RLock()
	factory, exists := descriptorFactories[kind]
	descriptorMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: unknown descriptor type %q", ErrInvalidArgument, kind)
	}

	descriptor := factory()
	if err := descriptor.Deserialize(data); err != nil {
		return nil, err
	}

	return descriptor, nil
}

// checkDiscriminator validates the discriminator of a serialized map
// against the expected kind. A missing discriminator is accepted for
// compatibility with maps produced before the field became mandatory.
func checkDiscriminator(data map[string]any, kind string) error {
	raw, exists := data[DescriptorField]
	if !exists {
		return nil
	}

	value, ok := raw.(string)
	if !ok || value != kind {
		return fmt.Errorf("%w: descriptor type %v does not match %q", ErrInvalidArgument, raw, kind)
	}

	return nil
}

// stringField extracts a required string field from a serialized map.
func stringField(data map[string]any, key, kind string) (string, error) {
	raw, exists := data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s descriptor is missing the %q field", ErrInvalidArgument, kind, key)
	}

	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s descriptor field %q must be a non-empty string", ErrInvalidArgument, kind, key)
	}

	return value, nil
}
