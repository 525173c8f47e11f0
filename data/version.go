package data

import (
	"fmt"
	"math"
)

// ResourceVersion is a strictly positive, totally ordered version
// identifier for a single resource instance.
type ResourceVersion struct {
	value int
}

// LatestVersion is the reserved maximum version. Filesystem-sourced
// resources are registered with it so that packaged content can never
// silently override a locally placed file.
var LatestVersion = ResourceVersion{value: math.MaxInt}

// NewResourceVersion creates a version from an explicit positive value.
// Returns ErrInvalidVersion for values <= 0.
func NewResourceVersion(value int) (ResourceVersion, error) {
	if value <= 0 {
		return ResourceVersion{}, fmt.Errorf("%w: %d", ErrInvalidVersion, value)
	}

	return ResourceVersion{value: value}, nil
}

// Value returns the underlying integer value.
func (v ResourceVersion) Value() int {
	return v.value
}

// IsZero reports whether the version is the uninitialized zero value.
// A zero version never passes NewResourceVersion and marks "unspecified"
// in lookup APIs.
func (v ResourceVersion) IsZero() bool {
	return v.value == 0
}

// Bump increments the version by exactly one and returns the new value.
// There is no upper bound beyond the integer range.
func (v *ResourceVersion) Bump() ResourceVersion {
	v.value++
	return *v
}

// Compare returns -1, 0 or +1 depending on the order of v relative to
// other.
func (v ResourceVersion) Compare(other ResourceVersion) int {
	switch {
	case v.value < other.value:
		return -1
	case v.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both versions hold the same value.
func (v ResourceVersion) Equal(other ResourceVersion) bool {
	return v.value == other.value
}

// String renders the bare integer value.
func (v ResourceVersion) String() string {
	return fmt.Sprintf("%d", v.value)
}

// DebugString renders the value with its type name for diagnostics.
func (v ResourceVersion) DebugString() string {
	return fmt.Sprintf("ResourceVersion(%d)", v.value)
}
