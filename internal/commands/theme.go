package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"caseshop/internal/app"
	"caseshop/internal/exitcode"
)

func init() {
	Register(&ThemeCmd{})
}

// ThemeCmd shows or sets the color palette.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string                   { return "theme" }
func (c *ThemeCmd) Aliases() []string              { return nil }
func (c *ThemeCmd) Synopsis() string               { return "Show, set or toggle the dark palette" }
func (c *ThemeCmd) Usage() string                  { return "caseshop theme [dark|light|toggle]" }
func (c *ThemeCmd) NeedsAuth() bool                { return false }
func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		return usageError(errOut, "unexpected argument: %s", args[1])
	}

	var err error
	switch {
	case len(args) == 0:
	case args[0] == "dark":
		err = a.Prefs.SetDarkMode(ctx, true)
	case args[0] == "light":
		err = a.Prefs.SetDarkMode(ctx, false)
	case args[0] == "toggle":
		_, err = a.ToggleDarkMode(ctx)
	default:
		return usageError(errOut, "unknown theme: %s", args[0])
	}
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintln(out, themeName(a.Prefs.DarkMode()))
	return exitcode.Success
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
