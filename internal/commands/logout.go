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
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command. The cart and wishlist are kept.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string                   { return "logout" }
func (c *LogoutCmd) Aliases() []string              { return nil }
func (c *LogoutCmd) Synopsis() string               { return "Sign out and forget the stored token" }
func (c *LogoutCmd) Usage() string                  { return "caseshop logout" }
func (c *LogoutCmd) NeedsAuth() bool                { return false }
func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if a.Session.Token() == "" {
		if !a.Config.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	if err := a.Logout(ctx); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}
	return acknowledge(a, out)
}
