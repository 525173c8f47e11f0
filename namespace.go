// Package namespace implements a versioned virtual namespace: a tree of
// directory and file nodes in which each file position can hold multiple
// versions of content contributed by different overlay sources, such as
// plain filesystem directories or package archives.
package namespace

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mwantia/namespace/cmd"
	"github.com/mwantia/namespace/data"
	"github.com/mwantia/namespace/loader"
	"github.com/mwantia/namespace/loader/local"
	"github.com/mwantia/namespace/loader/pack"
	"github.com/mwantia/namespace/log"
	"github.com/tidwall/btree"
)

// Namespace owns the root directory node and exposes registration,
// lookup and content-retrieval operations. Registration is expected to
// happen sequentially during bootstrap; afterwards many goroutines may
// look up nodes and content concurrently. All structural mutation and
// lookups are serialized through a single reader/writer lock.
type Namespace struct {
	mu sync.RWMutex

	log     *log.Logger
	root    *data.Node
	loaders *loader.Registry
	cmds    map[string]cmd.Command

	// Dotted path → node index rebuilt after every successful mutation,
	// so lookups avoid walking the tree.
	index *btree.Map[string, *data.Node]
}

// NewNamespace creates an empty namespace. The local filesystem and
// package loaders are always registered; additional loaders can be
// supplied with WithContentLoader.
func NewNamespace(opts ...NamespaceOption) (*Namespace, error) {
	options := newDefaultNamespaceOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	loaders := loader.NewRegistry(local.NewLocalLoader(), pack.NewPackLoader())
	for _, l := range options.Loaders {
		loaders.Register(l)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("namespace", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}

	ns := &Namespace{
		log:     logger,
		root:    data.NewRootNode(),
		loaders: loaders,
		cmds:    make(map[string]cmd.Command),
		index:   btree.NewMap[string, *data.Node](0),
	}

	if err := ns.initBuiltinCommands(); err != nil {
		return nil, err
	}

	for _, c := range options.Commands {
		if err := ns.RegisterCommand(c); err != nil {
			return nil, err
		}
	}

	return ns, nil
}

// Root returns the root directory node. The tree is owned by the
// namespace; callers must not mutate it.
func (ns *Namespace) Root() *data.Node {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	return ns.root
}

// HasNode checks whether a node exists at the given dotted path.
func (ns *Namespace) HasNode(path string) bool {
	_, found := ns.GetNode(path)
	return found
}

// GetNode returns the node at the given dotted path. The empty path
// addresses the root directory. The returned node is shared with the
// tree; callers racing with mutation should read through Children,
// Versions or GetContent instead, which snapshot under the lock.
func (ns *Namespace) GetNode(path string) (*data.Node, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	return ns.lookup(path)
}

// lookup resolves a dotted path. Must be called with the lock held.
func (ns *Namespace) lookup(path string) (*data.Node, bool) {
	if path == "" {
		return ns.root, true
	}

	if node, exists := ns.index.Get(path); exists {
		return node, true
	}

	// Paths with dotted node names may not match an index key directly.
	return ns.root.GetNode(path)
}

// Children returns the names of the direct children of the directory
// node at the given dotted path, subdirectories and files separately.
// Returns ErrNotFound for missing nodes and ErrTypeMismatch for file
// nodes.
func (ns *Namespace) Children(path string) (subdirectories, files []string, err error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	node, found := ns.lookup(path)
	if !found {
		return nil, nil, fmt.Errorf("%w: %s", data.ErrNotFound, path)
	}
	if !node.IsDirectory() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", data.ErrTypeMismatch, path)
	}

	for name := range node.Subdirectories() {
		subdirectories = append(subdirectories, name)
	}
	for name := range node.Files() {
		files = append(files, name)
	}

	return subdirectories, files, nil
}

// Versions returns a snapshot of the resources of the file node at the
// given dotted path, sorted descending by version. Returns ErrNotFound
// for missing nodes and ErrTypeMismatch for directory nodes.
func (ns *Namespace) Versions(path string) ([]*data.Resource, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	node, found := ns.lookup(path)
	if !found {
		return nil, fmt.Errorf("%w: %s", data.ErrNotFound, path)
	}
	if !node.IsFile() {
		return nil, fmt.Errorf("%w: %s is not a file", data.ErrTypeMismatch, path)
	}

	return slices.Clone(node.Resources()), nil
}

// GetContent resolves the latest resource of the file node at the given
// dotted path. Returns ErrNotFound for missing nodes, directory nodes
// and empty resource lists; resolution failures surface as
// ErrUnavailable.
func (ns *Namespace) GetContent(ctx context.Context, path string) ([]byte, error) {
	return ns.GetContentVersion(ctx, path, data.ResourceVersion{})
}

// GetContentVersion resolves the resource with the exact version of the
// file node at the given dotted path. The zero version selects the
// latest resource. The resource is selected under the read lock;
// resolution itself happens outside it and may block on I/O.
func (ns *Namespace) GetContentVersion(ctx context.Context, path string, version data.ResourceVersion) ([]byte, error) {
	ns.mu.RLock()
	node, found := ns.lookup(path)
	if !found {
		ns.mu.RUnlock()
		return nil, fmt.Errorf("%w: %s", data.ErrNotFound, path)
	}

	// Directories have no content.
	if !node.IsFile() {
		ns.mu.RUnlock()
		return nil, fmt.Errorf("%w: %s is a directory", data.ErrNotFound, path)
	}

	resource, found := node.GetResource(version)
	ns.mu.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w: %s has no resource at version %s", data.ErrNotFound, path, version)
	}

	content, err := resource.Content(ctx, ns.loaders)
	if err != nil {
		ns.log.Error("Failed to resolve %s (%s): %v", path, resource, err)
		return nil, err
	}

	return content, nil
}
