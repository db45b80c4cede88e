package commands

import (
	"context"
	"flag"
	"io"
	"strconv"
	"strings"

	"caseshop/internal/app"
	"caseshop/internal/exitcode"
	"caseshop/internal/output"
)

func init() {
	Register(&CartCmd{})
	Register(&QtyCmd{})
	Register(&RemoveCmd{})
	Register(&ClearCmd{})
	Register(&CheckoutCmd{})
}

// CartCmd prints the cart.
type CartCmd struct{}

func (c *CartCmd) Name() string                   { return "cart" }
func (c *CartCmd) Aliases() []string              { return nil }
func (c *CartCmd) Synopsis() string               { return "Show the cart" }
func (c *CartCmd) Usage() string                  { return "caseshop cart" }
func (c *CartCmd) NeedsAuth() bool                { return false }
func (c *CartCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CartCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	p := output.New(out, a.Prefs.DarkMode())
	p.Cart(a.Cart.Lines(), a.Cart.ItemCount(), a.Cart.Total())
	return exitcode.Success
}

// QtyCmd sets the quantity of a cart line.
type QtyCmd struct{}

func (c *QtyCmd) Name() string                   { return "qty" }
func (c *QtyCmd) Aliases() []string              { return nil }
func (c *QtyCmd) Synopsis() string               { return "Set the quantity of a cart line (<= 0 removes it)" }
func (c *QtyCmd) Usage() string                  { return "caseshop qty <product> <n>" }
func (c *QtyCmd) NeedsAuth() bool                { return false }
func (c *QtyCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *QtyCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		return usageError(errOut, "product and quantity required")
	}
	n, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return usageError(errOut, "invalid quantity: %s", args[len(args)-1])
	}
	p, err := a.Product(strings.Join(args[:len(args)-1], " "))
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	if err := a.Cart.UpdateQuantity(ctx, p.ID, n); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// RemoveCmd removes a cart line.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string                   { return "remove" }
func (c *RemoveCmd) Aliases() []string              { return nil }
func (c *RemoveCmd) Synopsis() string               { return "Remove a product from the cart" }
func (c *RemoveCmd) Usage() string                  { return "caseshop remove <product>" }
func (c *RemoveCmd) NeedsAuth() bool                { return false }
func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref := strings.Join(args, " ")
	if strings.TrimSpace(ref) == "" {
		return usageError(errOut, "product required")
	}
	// Lines are addressed by id even when the product left the catalog.
	id, err := strconv.Atoi(ref)
	if err != nil {
		p, perr := a.Product(ref)
		if perr != nil {
			return usageError(errOut, "%v", perr)
		}
		id = p.ID
	}
	if err := a.Cart.Remove(ctx, id); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// ClearCmd empties the cart.
type ClearCmd struct{}

func (c *ClearCmd) Name() string                   { return "clear" }
func (c *ClearCmd) Aliases() []string              { return nil }
func (c *ClearCmd) Synopsis() string               { return "Empty the cart" }
func (c *ClearCmd) Usage() string                  { return "caseshop clear" }
func (c *ClearCmd) NeedsAuth() bool                { return false }
func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if err := a.Cart.Clear(ctx); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// CheckoutCmd starts checkout.
type CheckoutCmd struct{}

func (c *CheckoutCmd) Name() string                   { return "checkout" }
func (c *CheckoutCmd) Aliases() []string              { return nil }
func (c *CheckoutCmd) Synopsis() string               { return "Check out the cart" }
func (c *CheckoutCmd) Usage() string                  { return "caseshop checkout" }
func (c *CheckoutCmd) NeedsAuth() bool                { return false }
func (c *CheckoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckoutCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(a.Cart.Lines()) == 0 {
		return usageError(errOut, "cart is empty")
	}
	if err := a.Checkout(); err != nil {
		return fail(errOut, err)
	}
	return exitcode.Success
}
