package commands

import (
	"context"
	"flag"
	"io"

	"caseshop/internal/app"
	"caseshop/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd updates fields of a task. Only flags that were given are sent.
type EditCmd struct {
	title    optionalString
	desc     optionalString
	priority optionalString
	category optionalString
	status   optionalString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Update a task" }
func (c *EditCmd) Usage() string {
	return "caseshop edit [--title <t>] [--desc <d>] [--priority <p>] [--category <c>] [--status <s>] <ref>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.desc, "desc", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.category, "category", "")
	fs.Var(&c.status, "status", "")
}

func (c *EditCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return usageError(errOut, "%v", err)
	}

	patch := service.TaskPatch{
		Title:       c.title.ptr(),
		Description: c.desc.ptr(),
		Priority:    c.priority.ptr(),
		Category:    c.category.ptr(),
		Status:      c.status.ptr(),
	}
	if patch.Empty() {
		return usageError(errOut, "nothing to change")
	}
	if err := patch.Validate(); err != nil {
		return usageError(errOut, "%v", err)
	}

	task, err := ref.Resolve(a.Tasks.Tasks())
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	if _, err := a.Tasks.Update(ctx, task.ID, patch); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// optionalString is a flag.Value that remembers whether it was set.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value, o.set = v, true
	return nil
}

func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
