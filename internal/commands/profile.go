package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
)

func init() {
	Register(&ProfileCmd{})
	Register(&DashboardCmd{})
}

// ProfileCmd shows the profile page.
type ProfileCmd struct{}

func (c *ProfileCmd) Name() string                   { return "profile" }
func (c *ProfileCmd) Aliases() []string              { return []string{"me"} }
func (c *ProfileCmd) Synopsis() string               { return "Show your profile" }
func (c *ProfileCmd) Usage() string                  { return "caseshop profile" }
func (c *ProfileCmd) NeedsAuth() bool                { return false }
func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProfileCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	return render(ctx, a, app.PageProfile, out, errOut)
}

// DashboardCmd shows the task dashboard page.
type DashboardCmd struct{}

func (c *DashboardCmd) Name() string                   { return "dashboard" }
func (c *DashboardCmd) Aliases() []string              { return nil }
func (c *DashboardCmd) Synopsis() string               { return "Show the task dashboard" }
func (c *DashboardCmd) Usage() string                  { return "caseshop dashboard" }
func (c *DashboardCmd) NeedsAuth() bool                { return false }
func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	return render(ctx, a, app.PageDashboard, out, errOut)
}
