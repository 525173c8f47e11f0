// Package pack reads and builds package archives. A package is a cpio
// archive carrying a JSON manifest entry (conventionally named ".vfs")
// that describes a namespace subtree, plus one archive entry per
// embedded content file.
package pack

import (
	"fmt"

	"github.com/mwantia/namespace/data"
)

// ManifestName is the conventional name of the manifest entry inside a
// package archive.
const ManifestName = ".vfs"

// Manifest node type discriminators.
const (
	ManifestTypeDirectory = "directory"
	ManifestTypeFile      = "file"
)

// Manifest describes one directory level of a packaged subtree. The
// top-level manifest of a package must be a directory.
type Manifest struct {
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	Subdirectories map[string]*Manifest  `json:"subdirectories,omitempty"`
	Files          map[string]*FileEntry `json:"files,omitempty"`
}

// FileEntry describes one packaged file and its ordered resource list.
type FileEntry struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Resource []ResourceEntry `json:"resource"`
}

// ResourceEntry pairs a version with a serialized descriptor.
type ResourceEntry struct {
	Version    int            `json:"version"`
	Descriptor map[string]any `json:"descriptor"`
}

// toNode materializes the manifest into a candidate subtree. Descriptors
// of packagefile resources without an explicit package path are bound to
// archivePath, since manifests do not know where their archive lives.
func (m *Manifest) toNode(name, archivePath string) (*data.Node, error) {
	if m.Type != ManifestTypeDirectory {
		return nil, fmt.Errorf("%w: entry %q must be of type %q",
			data.ErrInvalidManifest, name, ManifestTypeDirectory)
	}

	node := data.NewDirectoryNode(name)

	for childName, child := range m.Subdirectories {
		if child == nil {
			return nil, fmt.Errorf("%w: subdirectory %q is empty", data.ErrInvalidManifest, childName)
		}

		childNode, err := child.toNode(childName, archivePath)
		if err != nil {
			return nil, err
		}

		if err := node.AddChild(childNode); err != nil {
			return nil, err
		}
	}

	for childName, child := range m.Files {
		if child == nil {
			return nil, fmt.Errorf("%w: file %q is empty", data.ErrInvalidManifest, childName)
		}

		childNode, err := child.toNode(childName, archivePath)
		if err != nil {
			return nil, err
		}

		if err := node.AddChild(childNode); err != nil {
			return nil, err
		}
	}

	return node, nil
}

func (f *FileEntry) toNode(name, archivePath string) (*data.Node, error) {
	if f.Type != ManifestTypeFile {
		return nil, fmt.Errorf("%w: entry %q must be of type %q",
			data.ErrInvalidManifest, name, ManifestTypeFile)
	}

	if len(f.Resource) == 0 {
		return nil, fmt.Errorf("%w: file %q declares no resources", data.ErrInvalidManifest, name)
	}

	node, err := data.NewFileNode(name)
	if err != nil {
		return nil, err
	}

	for _, entry := range f.Resource {
		version, err := data.NewResourceVersion(entry.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: file %q: %v", data.ErrInvalidManifest, name, err)
		}

		descriptor, err := data.DecodeDescriptor(entry.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%w: file %q: %v", data.ErrInvalidManifest, name, err)
		}

		if embedded, ok := descriptor.(*data.PackageFileDescriptor); ok && embedded.Package == "" {
			embedded.Package = archivePath
		}

		node.AddResource(data.NewResource(version, descriptor), true)
	}
	node.SortResources()

	return node, nil
}
