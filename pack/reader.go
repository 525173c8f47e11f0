package pack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/cpio"
	"github.com/mwantia/namespace/data"
)

// ReadPackage decodes the manifest of the package archive at the given
// path and materializes it into a candidate subtree rooted at a ROOT
// directory node. Content entries are not read; packagefile resources
// resolve lazily through their loader.
func ReadPackage(path string) (*data.Node, error) {
	archive, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: package %s: %v", data.ErrInvalidPath, path, err)
	}
	defer archive.Close()

	manifest, err := readManifest(archive, path)
	if err != nil {
		return nil, err
	}

	return manifest.toNode(data.RootName, filepath.Clean(path))
}

func readManifest(archive io.Reader, path string) (*Manifest, error) {
	reader := cpio.NewReader(archive)

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: package %s: %v", data.ErrInvalidManifest, path, err)
		}

		if header.Name != ManifestName {
			continue
		}

		manifest := &Manifest{}
		if err := json.NewDecoder(reader).Decode(manifest); err != nil {
			return nil, fmt.Errorf("%w: package %s: %v", data.ErrInvalidManifest, path, err)
		}

		return manifest, nil
	}

	return nil, fmt.Errorf("%w: package %s has no %s entry",
		data.ErrInvalidManifest, path, ManifestName)
}
