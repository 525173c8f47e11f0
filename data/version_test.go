package data_test

import (
	"errors"
	"testing"

	"github.com/mwantia/namespace/data"
)

func TestResourceVersion_New(t *testing.T) {
	for _, value := range []int{0, -1, -42} {
		if _, err := data.NewResourceVersion(value); !errors.Is(err, data.ErrInvalidArgument) {
			t.Errorf("NewResourceVersion(%d) = %v, expected ErrInvalidArgument", value, err)
		}
	}

	version, err := data.NewResourceVersion(1)
	if err != nil {
		t.Fatalf("NewResourceVersion(1) failed: %v", err)
	}
	if version.Value() != 1 {
		t.Errorf("Value() = %d, expected 1", version.Value())
	}
}

func TestResourceVersion_Bump(t *testing.T) {
	version, err := data.NewResourceVersion(1)
	if err != nil {
		t.Fatalf("NewResourceVersion(1) failed: %v", err)
	}

	version.Bump()
	version.Bump()
	bumped := version.Bump()

	if version.Value() != 4 {
		t.Errorf("Value() after three bumps = %d, expected 4", version.Value())
	}
	if !bumped.Equal(version) {
		t.Errorf("Bump() returned %s, expected %s", bumped, version)
	}
}

func TestResourceVersion_Compare(t *testing.T) {
	lower, _ := data.NewResourceVersion(1)
	higher, _ := data.NewResourceVersion(7)

	if lower.Compare(higher) != -1 {
		t.Errorf("expected %s < %s", lower, higher)
	}
	if higher.Compare(lower) != 1 {
		t.Errorf("expected %s > %s", higher, lower)
	}
	if lower.Compare(lower) != 0 {
		t.Errorf("expected %s == %s", lower, lower)
	}

	if lower.Compare(data.LatestVersion) != -1 {
		t.Error("expected every explicit version to rank below LatestVersion")
	}
}

func TestResourceVersion_Strings(t *testing.T) {
	version, _ := data.NewResourceVersion(17)

	if got := version.String(); got != "17" {
		t.Errorf("String() = %q, expected %q", got, "17")
	}
	if got := version.DebugString(); got != "ResourceVersion(17)" {
		t.Errorf("DebugString() = %q, expected %q", got, "ResourceVersion(17)")
	}
}
