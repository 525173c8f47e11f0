// Package local loads resource content from the local filesystem.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mwantia/namespace/data"
)

type LocalLoader struct {
}

// NewLocalLoader creates a loader for localfile descriptors.
func NewLocalLoader() *LocalLoader {
	return &LocalLoader{}
}

// Kind returns the descriptor discriminator handled by this loader.
func (*LocalLoader) Kind() string {
	return data.DescriptorKindLocalFile
}

// Load reads the file the descriptor points at. A vanished or unreadable
// file surfaces as data.ErrUnavailable so callers may retry once the
// file returns.
func (*LocalLoader) Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	local, ok := descriptor.(*data.LocalFileDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: expected a localfile descriptor", data.ErrInvalidArgument)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(local.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", data.ErrUnavailable, local.Path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s permission denied", data.ErrUnavailable, local.Path)
		}

		return nil, fmt.Errorf("%w: %s: %v", data.ErrUnavailable, local.Path, err)
	}

	return content, nil
}
