package data_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mwantia/namespace/data"
)

type fakeResolver struct {
	content []byte
	fail    bool
	calls   int
}

func (fr *fakeResolver) Resolve(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	fr.calls++
	if fr.fail {
		return nil, fmt.Errorf("%w: backing store gone", data.ErrUnavailable)
	}

	return fr.content, nil
}

func TestResource_ContentCached(t *testing.T) {
	resolver := &fakeResolver{content: []byte("hello world")}
	resource := data.NewResource(mustVersion(t, 1), data.NewLocalFileDescriptor("/tmp/hello"))

	for i := 0; i < 3; i++ {
		content, err := resource.Content(t.Context(), resolver)
		if err != nil {
			t.Fatalf("Content failed: %v", err)
		}
		if string(content) != "hello world" {
			t.Errorf("Content = %q, expected %q", content, "hello world")
		}
	}

	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, expected 1", resolver.calls)
	}
}

func TestResource_FailureNotCached(t *testing.T) {
	resolver := &fakeResolver{content: []byte("recovered"), fail: true}
	resource := data.NewResource(mustVersion(t, 1), data.NewLocalFileDescriptor("/tmp/hello"))

	if _, err := resource.Content(t.Context(), resolver); !errors.Is(err, data.ErrUnavailable) {
		t.Fatalf("Content = %v, expected ErrUnavailable", err)
	}

	// A retry hits the resolver again and may succeed.
	resolver.fail = false
	content, err := resource.Content(t.Context(), resolver)
	if err != nil {
		t.Fatalf("Content after recovery failed: %v", err)
	}
	if string(content) != "recovered" {
		t.Errorf("Content = %q, expected %q", content, "recovered")
	}
	if resolver.calls != 2 {
		t.Errorf("resolver called %d times, expected 2", resolver.calls)
	}
}

func TestResource_NoResolver(t *testing.T) {
	resource := data.NewResource(mustVersion(t, 1), data.NewLocalFileDescriptor("/tmp/hello"))

	if _, err := resource.Content(t.Context(), nil); !errors.Is(err, data.ErrUnavailable) {
		t.Errorf("Content without resolver = %v, expected ErrUnavailable", err)
	}
}

func TestResource_Identity(t *testing.T) {
	first := data.NewResource(mustVersion(t, 1), data.NewLocalFileDescriptor("/tmp/a"))
	second := data.NewResource(mustVersion(t, 1), data.NewLocalFileDescriptor("/tmp/a"))

	if first.ID == "" || first.ID == second.ID {
		t.Errorf("expected distinct non-empty resource IDs, got %q and %q", first.ID, second.ID)
	}

	// Diagnostics carry the ID so identical version/descriptor pairs can
	// be told apart in log lines.
	if !strings.Contains(first.String(), first.ID) {
		t.Errorf("String() = %q, expected it to contain the ID %q", first, first.ID)
	}
}
