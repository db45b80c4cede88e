package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string                   { return "rm" }
func (c *RmCmd) Aliases() []string              { return nil }
func (c *RmCmd) Synopsis() string               { return "Delete a task" }
func (c *RmCmd) Usage() string                  { return "caseshop rm <ref>" }
func (c *RmCmd) NeedsAuth() bool                { return true }
func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	task, err := ref.Resolve(a.Tasks.Tasks())
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	if err := a.Tasks.Delete(ctx, task.ID); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
