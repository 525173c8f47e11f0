// Package pack loads resource content embedded in package archives.
package pack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
	"github.com/mwantia/namespace/data"
)

type PackLoader struct {
}

// NewPackLoader creates a loader for packagefile descriptors.
func NewPackLoader() *PackLoader {
	return &PackLoader{}
}

// Kind returns the descriptor discriminator handled by this loader.
func (*PackLoader) Kind() string {
	return data.DescriptorKindPackageFile
}

// Load opens the package archive the descriptor points at and streams
// the named entry. The archive is scanned sequentially; packages are
// small enough that an entry index is not worth keeping.
func (*PackLoader) Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	embedded, ok := descriptor.(*data.PackageFileDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: expected a packagefile descriptor", data.ErrInvalidArgument)
	}

	if embedded.Package == "" {
		return nil, fmt.Errorf("%w: packagefile descriptor has no package path", data.ErrInvalidArgument)
	}

	archive, err := os.Open(embedded.Package)
	if err != nil {
		return nil, fmt.Errorf("%w: package %s: %v", data.ErrUnavailable, embedded.Package, err)
	}
	defer archive.Close()

	reader := cpio.NewReader(archive)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: package %s: %v", data.ErrUnavailable, embedded.Package, err)
		}

		if header.Name != embedded.Entry {
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: package %s entry %s: %v",
				data.ErrUnavailable, embedded.Package, embedded.Entry, err)
		}

		return content, nil
	}

	return nil, fmt.Errorf("%w: package %s has no entry %s",
		data.ErrUnavailable, embedded.Package, embedded.Entry)
}
