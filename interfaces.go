package namespace

import (
	"context"

	"github.com/mwantia/namespace/data"
)

// Provider is the read surface of a Namespace. Components needing
// lookups should receive a Provider explicitly instead of reaching for
// process-wide state.
type Provider interface {
	// HasNode checks whether a node exists at the given dotted path.
	HasNode(path string) bool

	// GetNode returns the node at the given dotted path.
	GetNode(path string) (*data.Node, bool)

	// Children returns the names of the direct children of the
	// directory node at the given dotted path.
	Children(path string) (subdirectories, files []string, err error)

	// Versions returns a snapshot of the resources of the file node at
	// the given dotted path, sorted descending by version.
	Versions(path string) ([]*data.Resource, error)

	// GetContent resolves the latest resource of the file node at the
	// given dotted path.
	GetContent(ctx context.Context, path string) ([]byte, error)

	// GetContentVersion resolves the resource with the exact version of
	// the file node at the given dotted path. The zero version selects
	// the latest resource.
	GetContentVersion(ctx context.Context, path string, version data.ResourceVersion) ([]byte, error)
}

var _ Provider = (*Namespace)(nil)
