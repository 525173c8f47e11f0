package namespace

import (
	"github.com/mwantia/namespace/cmd"
	"github.com/mwantia/namespace/loader"
	"github.com/mwantia/namespace/log"
)

type NamespaceOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool

	// Logger overrides the log settings above when set.
	Logger *log.Logger

	Loaders  []loader.ContentLoader
	Commands []cmd.Command
}

type NamespaceOption func(*NamespaceOptions) error

func newDefaultNamespaceOptions() *NamespaceOptions {
	return &NamespaceOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

// WithLogLevelName sets the log level from its name, e.g. "debug".
func WithLogLevelName(name string) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		level, err := log.Parse(name)
		if err != nil {
			return err
		}

		opts.LogLevel = level
		return nil
	}
}

func WithLogFile(logFile string) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

// WithLogger replaces the default logger entirely, e.g. with
// log.Discard() in tests.
func WithLogger(logger *log.Logger) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.Logger = logger
		return nil
	}
}

func WithoutTerminalLog() NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithContentLoader registers an additional content loader, replacing
// any default loader handling the same descriptor kind.
func WithContentLoader(l loader.ContentLoader) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.Loaders = append(opts.Loaders, l)
		return nil
	}
}

// WithCommand registers an additional command next to the builtins.
func WithCommand(c cmd.Command) NamespaceOption {
	return func(opts *NamespaceOptions) error {
		opts.Commands = append(opts.Commands, c)
		return nil
	}
}
