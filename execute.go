package namespace

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/namespace/cmd"
	"github.com/mwantia/namespace/cmd/builtin"
	"github.com/mwantia/namespace/data"
)

var _ cmd.API = (*Namespace)(nil)

// RegisterCommand makes a command available to Execute. Registering a
// name twice fails with ErrInvalidArgument.
func (ns *Namespace) RegisterCommand(c cmd.Command) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.cmds[c.Name()]; exists {
		return fmt.Errorf("%w: command %q already registered", data.ErrInvalidArgument, c.Name())
	}

	ns.cmds[c.Name()] = c
	return nil
}

// UnregisterCommand removes a command. Returns false if the name was
// never registered.
func (ns *Namespace) UnregisterCommand(name string) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.cmds[name]; !exists {
		return false
	}

	delete(ns.cmds, name)
	return true
}

// Execute parses and runs a registered command, writing its output to
// the given writer. The first argument selects the command; the rest is
// parsed against the command's flag set. Returns the command exit code.
func (ns *Namespace) Execute(ctx context.Context, writer io.Writer, args ...string) (int, error) {
	if len(args) == 0 {
		return 1, fmt.Errorf("%w: no command given", data.ErrInvalidArgument)
	}

	ns.mu.RLock()
	command, exists := ns.cmds[args[0]]
	ns.mu.RUnlock()

	if !exists {
		return 1, fmt.Errorf("%w: unknown command %q", data.ErrInvalidArgument, args[0])
	}

	parsed, err := cmd.NewParser(command.GetFlags()).Parse(args[1:])
	if err != nil {
		return 1, err
	}

	return command.Execute(ctx, ns, parsed, writer)
}

func (ns *Namespace) initBuiltinCommands() error {
	builtins := []cmd.Command{
		&builtin.LsCommand{},
		&builtin.CatCommand{},
		&builtin.VersionsCommand{},
	}

	for _, c := range builtins {
		if err := ns.RegisterCommand(c); err != nil {
			return err
		}
	}

	return nil
}
