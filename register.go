package namespace

import (
	"context"
	"fmt"
	"os"

	"github.com/mwantia/namespace/data"
	"github.com/mwantia/namespace/pack"
	"github.com/mwantia/namespace/scan"
	"github.com/tidwall/btree"
)

// RegisterSource builds a candidate subtree from the given path and
// merges it into the existing tree. A directory is walked recursively;
// a regular file is treated as a package archive. Any other path shape
// fails with ErrInvalidArgument. A candidate that fails to build leaves
// the tree untouched; a kind conflict detected mid-merge aborts the
// merge but may leave earlier insertions from the same call in place.
// Multiple calls compose rather than replace.
func (ns *Namespace) RegisterSource(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty source path", data.ErrInvalidPath)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", data.ErrInvalidPath, path, err)
	}

	var candidate *data.Node

	switch {
	case info.IsDir():
		candidate, err = scan.Directory(path)
	case info.Mode().IsRegular():
		candidate, err = pack.ReadPackage(path)
	default:
		return fmt.Errorf("%w: %s is neither a directory nor a regular file",
			data.ErrInvalidArgument, path)
	}

	if err != nil {
		ns.log.Error("Failed to register source %s: %v", path, err)
		return err
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if err := ns.root.Merge(candidate); err != nil {
		ns.log.Error("Failed to merge source %s: %v", path, err)
		return err
	}

	ns.rebuildIndex()
	ns.log.Info("Registered source %s (%d nodes indexed)", path, ns.index.Len())

	return nil
}

// AddNode merges a single node into the root directory. Nodes colliding
// by name are merged, not replaced.
func (ns *Namespace) AddNode(node *data.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", data.ErrInvalidArgument)
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if err := ns.root.AddChild(node); err != nil {
		return err
	}

	ns.rebuildIndex()
	ns.log.Debug("Added node %s", node)

	return nil
}

// RemoveNode removes the node at the given dotted path. Returns
// ErrNotFound if no node exists there.
func (ns *Namespace) RemoveNode(path string) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if !ns.root.RemoveNode(path) {
		return fmt.Errorf("%w: %s", data.ErrNotFound, path)
	}

	ns.rebuildIndex()
	ns.log.Debug("Removed node %s", path)

	return nil
}

// rebuildIndex re-walks the tree into the dotted path index. Must be
// called with the write lock held.
func (ns *Namespace) rebuildIndex() {
	index := btree.NewMap[string, *data.Node](0)
	for path, node := range ns.root.All() {
		index.Set(path, node)
	}

	ns.index = index
}
