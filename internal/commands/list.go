package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
	"caseshop/internal/exitcode"
	"caseshop/internal/output"
	"caseshop/internal/service"
	"caseshop/internal/tasks"
)

func init() {
	Register(&ListCmd{})
	Register(&StatsCmd{})
}

// ListCmd implements the tasks command: the dashboard task list.
// Positions are always those of the unfiltered list so they can be passed
// to done, edit and rm.
type ListCmd struct {
	status   string
	category string
}

// SetFilter sets the filters (for testing).
func (c *ListCmd) SetFilter(status, category string) {
	c.status, c.category = status, category
}

func (c *ListCmd) Name() string      { return "tasks" }
func (c *ListCmd) Aliases() []string { return []string{"list"} }
func (c *ListCmd) Synopsis() string  { return "List dashboard tasks" }
func (c *ListCmd) Usage() string {
	return "caseshop tasks [--status <status>] [--category <category>]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", tasks.FilterAll, "")
	fs.StringVar(&c.category, "category", tasks.FilterAll, "")
}

func (c *ListCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if c.status != tasks.FilterAll {
		if err := service.ValidateEnum("status", c.status, service.Statuses); err != nil {
			return usageError(errOut, "%v", err)
		}
	}
	if c.category != tasks.FilterAll {
		if err := service.ValidateEnum("category", c.category, service.Categories); err != nil {
			return usageError(errOut, "%v", err)
		}
	}

	p := output.New(out, a.Prefs.DarkMode())
	all := a.Tasks.Tasks()
	shown := 0
	for i, t := range all {
		if !tasks.Match(t, c.status, c.category) {
			continue
		}
		p.Task(i+1, t)
		shown++
	}
	if shown == 0 && !a.Config.Quiet {
		p.Line("no tasks")
	}
	return exitcode.Success
}

// StatsCmd prints task counters.
type StatsCmd struct{}

func (c *StatsCmd) Name() string                   { return "stats" }
func (c *StatsCmd) Aliases() []string              { return nil }
func (c *StatsCmd) Synopsis() string               { return "Show task counts by status" }
func (c *StatsCmd) Usage() string                  { return "caseshop stats" }
func (c *StatsCmd) NeedsAuth() bool                { return true }
func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	output.New(out, a.Prefs.DarkMode()).Stats(a.Tasks.Stats())
	return exitcode.Success
}
