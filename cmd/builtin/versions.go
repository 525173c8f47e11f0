package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/namespace/cmd"
	"github.com/mwantia/namespace/data"
)

type VersionsCommand struct {
}

// Name returns the command identifier.
func (*VersionsCommand) Name() string {
	return "versions"
}

// Description returns human-readable help text.
func (*VersionsCommand) Description() string {
	return "List the resource versions of a file node"
}

// Usage returns a usage string for help.
func (*VersionsCommand) Usage() string {
	return "versions <path>"
}

// Execute lists the resources of the addressed file node descending by
// version, one per line with the descriptor kind.
func (*VersionsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("versions: missing path")
	}
	path := args.Args[0]

	resources, err := api.Versions(path)
	if err != nil {
		return 1, fmt.Errorf("versions: %s: %w", path, err)
	}

	for _, resource := range resources {
		version := resource.Version().String()
		if resource.Version().Equal(data.LatestVersion) {
			version = "latest"
		}

		fmt.Fprintf(writer, "%-8s %s\n", version, resource.Descriptor().Kind())
	}

	return 0, nil
}

// GetFlags returns the flag set for this command.
func (*VersionsCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
