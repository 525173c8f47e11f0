package data

import (
	"fmt"
	"iter"
	"slices"
)

// NodeKind discriminates between the two node shapes of the tree.
type NodeKind int

const (
	// NodeKindDirectory nodes own named child nodes.
	NodeKindDirectory NodeKind = iota
	// NodeKindFile nodes own an ordered set of versioned resources.
	NodeKindFile
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindDirectory:
		return "directory"
	case NodeKindFile:
		return "file"
	default:
		return "unknown"
	}
}

// RootName is the reserved name of the root node. A root must always be
// a directory.
const RootName = "ROOT"

// Node is a single vertex of the namespace tree. A directory node never
// holds resources and a file node never holds children; the constructors
// and mutators preserve that invariant.
//
// Nodes are not internally locked. The owning Namespace serializes all
// structural mutation.
type Node struct {
	Name string
	Kind NodeKind

	subdirectories map[string]*Node
	files          map[string]*Node

	// Sorted by version descending so Latest is the first element.
	resources []*Resource
}

// NewNode creates a node of the given kind. Creating a file node with
// the reserved root name fails with ErrInvalidRoot.
func NewNode(name string, kind NodeKind) (*Node, error) {
	if name == RootName && kind != NodeKindDirectory {
		return nil, ErrInvalidRoot
	}

	return &Node{
		Name: name,
		Kind: kind,
	}, nil
}

// NewDirectoryNode creates an empty directory node.
func NewDirectoryNode(name string) *Node {
	return &Node{
		Name: name,
		Kind: NodeKindDirectory,
	}
}

// NewFileNode creates a file node without resources.
func NewFileNode(name string) (*Node, error) {
	return NewNode(name, NodeKindFile)
}

// NewRootNode creates the reserved root directory node.
func NewRootNode() *Node {
	return NewDirectoryNode(RootName)
}

// IsDirectory returns true if the node is a directory.
func (n *Node) IsDirectory() bool {
	return n.Kind == NodeKindDirectory
}

// IsFile returns true if the node is a file.
func (n *Node) IsFile() bool {
	return n.Kind == NodeKindFile
}

// IsRoot returns true if the node carries the reserved root name.
func (n *Node) IsRoot() bool {
	return n.Name == RootName
}

// HasChild checks for a direct child with the given name. Directory
// nodes only; no traversal.
func (n *Node) HasChild(name string) bool {
	_, found := n.GetChild(name)
	return found
}

// GetChild returns the direct child with the given name, checking files
// before subdirectories.
func (n *Node) GetChild(name string) (*Node, bool) {
	if !n.IsDirectory() {
		return nil, false
	}

	if child, exists := n.files[name]; exists {
		return child, true
	}
	if child, exists := n.subdirectories[name]; exists {
		return child, true
	}

	return nil, false
}

// HasNode checks whether a node exists at the given dotted path.
func (n *Node) HasNode(path string) bool {
	_, found := n.GetNode(path)
	return found
}

// GetNode resolves a dotted path relative to this node. Because node
// names may contain literal dots, the whole remaining path is tried as a
// direct child before splitting on the first separator and recursing
// into the matching subdirectory. Missing intermediate segments yield
// "not found" and are never implicitly created.
func (n *Node) GetNode(path string) (*Node, bool) {
	if !n.IsDirectory() || path == "" {
		return nil, false
	}

	if child, found := n.GetChild(path); found {
		return child, true
	}

	head, rest := SplitPath(path)
	if rest == "" {
		return nil, false
	}

	child, exists := n.subdirectories[head]
	if !exists {
		return nil, false
	}

	return child.GetNode(rest)
}

// AddChild inserts a node into the matching child map. If a child with
// the same name already exists the new node is merged into it instead of
// replacing it. Returns ErrTypeMismatch when called on a file node.
func (n *Node) AddChild(child *Node) error {
	if !n.IsDirectory() {
		return fmt.Errorf("%w: cannot add children to a %s node", ErrTypeMismatch, n.Kind)
	}

	if existing, found := n.GetChild(child.Name); found {
		return existing.Merge(child)
	}

	switch child.Kind {
	case NodeKindDirectory:
		if n.subdirectories == nil {
			n.subdirectories = make(map[string]*Node)
		}
		n.subdirectories[child.Name] = child
	case NodeKindFile:
		if n.files == nil {
			n.files = make(map[string]*Node)
		}
		n.files[child.Name] = child
	default:
		return fmt.Errorf("%w: unknown node kind %d", ErrInvalidArgument, child.Kind)
	}

	return nil
}

// RemoveChild removes the direct child with the given name from
// whichever map holds it. No-op if absent.
func (n *Node) RemoveChild(name string) {
	delete(n.subdirectories, name)
	delete(n.files, name)
}

// RemoveNode removes the node at the given dotted path from its parent,
// using the same resolution rules as GetNode. Returns false if no node
// exists at the path.
func (n *Node) RemoveNode(path string) bool {
	if !n.IsDirectory() || path == "" {
		return false
	}

	if n.HasChild(path) {
		n.RemoveChild(path)
		return true
	}

	head, rest := SplitPath(path)
	if rest == "" {
		return false
	}

	child, exists := n.subdirectories[head]
	if !exists {
		return false
	}

	return child.RemoveNode(rest)
}

// Subdirectories returns the directory children keyed by name. The map
// is owned by the node and must not be mutated by callers.
func (n *Node) Subdirectories() map[string]*Node {
	return n.subdirectories
}

// Files returns the file children keyed by name. The map is owned by the
// node and must not be mutated by callers.
func (n *Node) Files() map[string]*Node {
	return n.files
}

// AddResource appends a resource to a file node. Adding a version that
// is already present is a no-op, so earlier registrations always win.
// Unless skipSort is set the resource list is re-sorted descending by
// version; callers batch-inserting many resources can skip the sort and
// call SortResources once at the end. No-op on directory nodes.
func (n *Node) AddResource(resource *Resource, skipSort bool) {
	if !n.IsFile() || resource == nil {
		return
	}

	for _, existing := range n.resources {
		if existing.Version().Equal(resource.Version()) {
			return
		}
	}

	n.resources = append(n.resources, resource)

	if !skipSort {
		n.SortResources()
	}
}

// SortResources restores the descending version order after a batch of
// AddResource calls with skipSort set.
func (n *Node) SortResources() {
	slices.SortFunc(n.resources, func(a, b *Resource) int {
		return b.Version().Compare(a.Version())
	})
}

// Latest returns the resource with the highest version, or not-found on
// an empty or non-file node.
func (n *Node) Latest() (*Resource, bool) {
	if !n.IsFile() || len(n.resources) == 0 {
		return nil, false
	}

	return n.resources[0], true
}

// GetResource returns the resource with the exact version, or the latest
// one if version is the zero value.
func (n *Node) GetResource(version ResourceVersion) (*Resource, bool) {
	if version.IsZero() {
		return n.Latest()
	}

	for _, resource := range n.resources {
		if resource.Version().Equal(version) {
			return resource, true
		}
	}

	return nil, false
}

// RemoveResource removes the resource with the matching version if
// present.
func (n *Node) RemoveResource(version ResourceVersion) {
	for i, resource := range n.resources {
		if resource.Version().Equal(version) {
			n.resources = slices.Delete(n.resources, i, i+1)
			return
		}
	}
}

// Resources returns the resource list sorted descending by version. The
// slice is owned by the node and must not be mutated by callers.
func (n *Node) Resources() []*Resource {
	return n.resources
}

// Merge combines another node into this one without discarding content
// already present. Merging nodes of different kinds fails with
// ErrTypeMismatch and leaves both inputs unmodified. Two directories
// union their children by name, recursing on collisions; two files union
// their resources by version, keeping existing versions untouched.
func (n *Node) Merge(other *Node) error {
	if other == nil {
		return nil
	}

	if n.Kind != other.Kind {
		return fmt.Errorf("%w: cannot merge %s node %q into %s node %q",
			ErrTypeMismatch, other.Kind, other.Name, n.Kind, n.Name)
	}

	if n.IsFile() {
		for _, resource := range other.resources {
			n.AddResource(resource, true)
		}
		n.SortResources()

		return nil
	}

	for _, child := range other.subdirectories {
		if err := n.AddChild(child); err != nil {
			return err
		}
	}
	for _, child := range other.files {
		if err := n.AddChild(child); err != nil {
			return err
		}
	}

	return nil
}

// All returns an iterator over every descendant of the node together
// with its dotted path relative to this node.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		n.walk("", yield)
	}
}

func (n *Node) walk(base string, yield func(string, *Node) bool) bool {
	for name, child := range n.files {
		if !yield(JoinPath(base, name), child) {
			return false
		}
	}
	for name, child := range n.subdirectories {
		path := JoinPath(base, name)
		if !yield(path, child) {
			return false
		}
		if !child.walk(path, yield) {
			return false
		}
	}

	return true
}

// String renders a short description of the node for diagnostics.
func (n *Node) String() string {
	if n.IsFile() {
		return fmt.Sprintf("file %q (%d resources)", n.Name, len(n.resources))
	}

	return fmt.Sprintf("directory %q (%d subdirectories, %d files)",
		n.Name, len(n.subdirectories), len(n.files))
}
