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
	Register(&LoginCmd{})
	Register(&RegisterCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in" }
func (c *LoginCmd) Usage() string     { return "caseshop login --email <email> --password <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if sess := a.Session.Current(); sess.Authenticated() {
		if !a.Config.Quiet {
			fmt.Fprintf(out, "already logged in as %s\n", sess.User.Email)
		}
		return exitcode.Success
	}

	if err := a.Login(ctx, c.email, c.password); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// RegisterCmd creates an account and signs in.
type RegisterCmd struct {
	name     string
	email    string
	password string
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and sign in" }
func (c *RegisterCmd) Usage() string {
	return "caseshop register --name <name> --email <email> --password <password>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if err := a.Register(ctx, c.name, c.email, c.password); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
