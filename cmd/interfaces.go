// Package cmd defines the command surface used to inspect a namespace
// interactively or from tooling.
package cmd

import (
	"context"
	"io"

	"github.com/mwantia/namespace/data"
)

// API is the narrow view of the namespace that commands operate on. It
// strips away everything not required for command execution.
type API interface {
	// RegisterSource builds a candidate subtree from the given path and
	// merges it into the existing tree.
	RegisterSource(ctx context.Context, path string) error

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
	// the file node at the given dotted path.
	GetContentVersion(ctx context.Context, path string, version data.ResourceVersion) ([]byte, error)
}

// Command represents an executable command over the namespace.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls [path]")
	Usage() string

	// Execute runs the command with parsed arguments, writing output to
	// the given writer. Returns exit code (0 = success) and error.
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (optional; nil
	// means the command takes positional arguments only)
	GetFlags() *CommandFlagSet
}
