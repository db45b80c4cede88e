package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"caseshop/internal/app"
	"caseshop/internal/commands"
	"caseshop/internal/config"
	"caseshop/internal/exitcode"
	"caseshop/internal/notify"
	"caseshop/internal/output"
)

// AppFactory builds an App from config.
// Used to inject the backend and storage during dispatch.
type AppFactory func(ctx context.Context, cfg *config.Config) (*app.App, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  AppFactory
}

// NewDispatcher creates a new dispatcher with the given registry and app factory.
func NewDispatcher(registry *commands.Registry, factory AppFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> home screen
	if len(args) == 0 {
		return d.dispatch(ctx, "home", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir, apiURL string
	var quiet, debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&apiURL, "api-url", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(errOut, err)
	}

	// A positional arg starting with - should have been parsed as a flag
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	a, err := d.factory(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Log.Warn("close failed", zap.Error(err))
		}
	}()

	if err := a.Start(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}

	// The restore greeting is not repeated on every invocation.
	greeting, _ := a.Toasts.Current()

	code := d.run(ctx, a, cmd, positionalArgs, out, errOut)
	printToast(a, greeting, errOut)
	return code
}

func (d *Dispatcher) run(ctx context.Context, a *app.App, cmd commands.Command, args []string, out, errOut io.Writer) int {
	if cmd.NeedsAuth() && !a.Session.Current().Authenticated() {
		fmt.Fprintln(errOut, "error: not logged in (run: caseshop login)")
		return exitcode.AuthError
	}
	return cmd.Run(ctx, a, args, out, errOut)
}

// printToast writes the visible notification, if any. Quiet mode drops
// success toasts only, and a success toast still showing from startup is
// skipped.
func printToast(a *app.App, fromStart notify.Toast, errOut io.Writer) {
	t, ok := a.Toasts.Current()
	if !ok || t.Kind == notify.Success && (a.Config.Quiet || t.ID == fromStart.ID) {
		return
	}
	output.New(errOut, a.Prefs.DarkMode()).Toast(t)
}

func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	switch {
	case strings.HasPrefix(errStr, "flag needs an argument: "):
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", strings.TrimPrefix(errStr, "flag needs an argument: "))
	case strings.HasPrefix(errStr, "flag provided but not defined: "):
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", strings.TrimPrefix(errStr, "flag provided but not defined: "))
	default:
		fmt.Fprintf(errOut, "error: %s\n", errStr)
	}
	return exitcode.UserError
}
