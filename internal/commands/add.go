package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"caseshop/internal/app"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	qty int
}

// SetQuantity sets the quantity (for testing).
func (c *AddCmd) SetQuantity(n int) {
	c.qty = n
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a product to the cart" }
func (c *AddCmd) Usage() string     { return "caseshop add [--qty <n>] <product>" }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.qty, "qty", 1, "")
	fs.IntVar(&c.qty, "n", 1, "")
}

func (c *AddCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref := strings.Join(args, " ")
	if strings.TrimSpace(ref) == "" {
		return usageError(errOut, "product required")
	}
	if _, err := a.Product(ref); err != nil {
		return usageError(errOut, "%v", err)
	}
	if _, err := a.AddToCart(ctx, ref, c.qty); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
