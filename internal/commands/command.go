// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a signed-in session.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command against a started App.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int
}
