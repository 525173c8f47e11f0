// Package builtin contains the builtin namespace commands.
package builtin

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/mwantia/namespace/cmd"
)

type LsCommand struct {
}

// Name returns the command identifier.
func (*LsCommand) Name() string {
	return "ls"
}

// Description returns human-readable help text.
func (*LsCommand) Description() string {
	return "List the children of a directory node"
}

// Usage returns a usage string for help.
func (*LsCommand) Usage() string {
	return "ls [path]"
}

// Execute lists the children of the addressed directory node, one per
// line, directories marked with a trailing separator.
func (*LsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	path := ""
	if len(args.Args) > 0 {
		path = args.Args[0]
	}

	subdirectories, files, err := api.Children(path)
	if err != nil {
		return 1, fmt.Errorf("ls: %s: %w", path, err)
	}

	names := make([]string, 0, len(subdirectories)+len(files))
	for _, name := range subdirectories {
		names = append(names, name+"/")
	}
	names = append(names, files...)
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(writer, name)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command.
func (*LsCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
