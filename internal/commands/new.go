package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"caseshop/internal/app"
	"caseshop/internal/service"
)

func init() {
	Register(&NewCmd{})
}

// NewCmd creates a dashboard task.
type NewCmd struct {
	desc     string
	priority string
	category string
	status   string
}

func (c *NewCmd) Name() string      { return "new" }
func (c *NewCmd) Aliases() []string { return []string{"create"} }
func (c *NewCmd) Synopsis() string  { return "Create a task" }
func (c *NewCmd) Usage() string {
	return "caseshop new [--desc <text>] [--priority <p>] [--category <c>] [--status <s>] <title...>"
}
func (c *NewCmd) NeedsAuth() bool { return true }

func (c *NewCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.status, "status", "", "")
}

func (c *NewCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return usageError(errOut, "title required")
	}

	draft := service.TaskDraft{
		Title:       title,
		Description: c.desc,
		Status:      c.status,
		Priority:    c.priority,
		Category:    c.category,
	}
	if err := draft.Validate(); err != nil {
		return usageError(errOut, "%v", err)
	}

	if _, err := a.Tasks.Create(ctx, draft); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
