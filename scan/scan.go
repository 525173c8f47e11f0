// Package scan builds candidate namespace subtrees from plain
// filesystem directories.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwantia/namespace/data"
)

// Directory walks the given directory recursively and builds a candidate
// subtree rooted at a ROOT directory node. Every subdirectory becomes a
// directory node and every regular file becomes a file node holding a
// single localfile resource at LatestVersion, so filesystem-sourced
// content always outranks package-sourced versions of the same file.
func Directory(path string) (*data.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", data.ErrInvalidPath, path)
		}

		return nil, fmt.Errorf("%w: %s: %v", data.ErrInvalidPath, path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", data.ErrInvalidPath, path)
	}

	root := data.NewRootNode()
	if err := scanInto(root, filepath.Clean(path)); err != nil {
		return nil, err
	}

	return root, nil
}

func scanInto(node *data.Node, path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", data.ErrInvalidPath, path, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			child := data.NewDirectoryNode(entry.Name())
			if err := scanInto(child, childPath); err != nil {
				return err
			}
			if err := node.AddChild(child); err != nil {
				return err
			}

			continue
		}

		// Sockets, devices and dangling links have no loadable content.
		if !entry.Type().IsRegular() {
			continue
		}

		child, err := data.NewFileNode(entry.Name())
		if err != nil {
			return err
		}

		resource := data.NewResource(data.LatestVersion, data.NewLocalFileDescriptor(childPath))
		child.AddResource(resource, false)

		if err := node.AddChild(child); err != nil {
			return err
		}
	}

	return nil
}
