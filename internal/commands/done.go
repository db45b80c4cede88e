package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
	"caseshop/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string                   { return "done" }
func (c *DoneCmd) Aliases() []string              { return nil }
func (c *DoneCmd) Synopsis() string               { return "Mark a task completed" }
func (c *DoneCmd) Usage() string                  { return "caseshop done <ref>" }
func (c *DoneCmd) NeedsAuth() bool                { return true }
func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	task, err := ref.Resolve(a.Tasks.Tasks())
	if err != nil {
		return usageError(errOut, "%v", err)
	}

	status := service.StatusCompleted
	if _, err := a.Tasks.Update(ctx, task.ID, service.TaskPatch{Status: &status}); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
