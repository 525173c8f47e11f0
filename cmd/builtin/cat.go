package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/namespace/cmd"
	"github.com/mwantia/namespace/data"
)

type CatCommand struct {
}

// Name returns the command identifier.
func (*CatCommand) Name() string {
	return "cat"
}

// Description returns human-readable help text.
func (*CatCommand) Description() string {
	return "Print the resolved content of a file node"
}

// Usage returns a usage string for help.
func (*CatCommand) Usage() string {
	return "cat [-v version] <path>"
}

// Execute resolves and prints the content of the addressed file node,
// at an exact version when -v is given, otherwise the latest.
func (*CatCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("cat: missing path")
	}
	path := args.Args[0]

	version := data.ResourceVersion{}
	if raw, given := args.Flags["version"]; given {
		value, _ := raw.(int64)
		parsed, err := data.NewResourceVersion(int(value))
		if err != nil {
			return 1, fmt.Errorf("cat: %w", err)
		}
		version = parsed
	}

	content, err := api.GetContentVersion(ctx, path, version)
	if err != nil {
		return 1, fmt.Errorf("cat: %s: %w", path, err)
	}

	if _, err := writer.Write(content); err != nil {
		return 1, err
	}

	return 0, nil
}

// GetFlags returns the flag set for this command.
func (*CatCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"version": {
				Name:        "version",
				Short:       "v",
				Type:        "int",
				Description: "Exact resource version to resolve",
			},
		},
	}
}
