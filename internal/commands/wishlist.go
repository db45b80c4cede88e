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
	Register(&WishlistCmd{})
	Register(&WishCmd{})
	Register(&UnwishCmd{})
}

// WishlistCmd prints the wishlist.
type WishlistCmd struct{}

func (c *WishlistCmd) Name() string                   { return "wishlist" }
func (c *WishlistCmd) Aliases() []string              { return nil }
func (c *WishlistCmd) Synopsis() string               { return "Show the wishlist" }
func (c *WishlistCmd) Usage() string                  { return "caseshop wishlist" }
func (c *WishlistCmd) NeedsAuth() bool                { return false }
func (c *WishlistCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WishlistCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	output.New(out, a.Prefs.DarkMode()).Wishlist(a.Cart.Wishlist())
	return exitcode.Success
}

// WishCmd adds a product to the wishlist.
type WishCmd struct{}

func (c *WishCmd) Name() string                   { return "wish" }
func (c *WishCmd) Aliases() []string              { return nil }
func (c *WishCmd) Synopsis() string               { return "Add a product to the wishlist" }
func (c *WishCmd) Usage() string                  { return "caseshop wish <product>" }
func (c *WishCmd) NeedsAuth() bool                { return false }
func (c *WishCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WishCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref := strings.Join(args, " ")
	if strings.TrimSpace(ref) == "" {
		return usageError(errOut, "product required")
	}
	if _, err := a.Product(ref); err != nil {
		return usageError(errOut, "%v", err)
	}
	if _, err := a.AddToWishlist(ctx, ref); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}

// UnwishCmd removes a product from the wishlist.
type UnwishCmd struct{}

func (c *UnwishCmd) Name() string                   { return "unwish" }
func (c *UnwishCmd) Aliases() []string              { return nil }
func (c *UnwishCmd) Synopsis() string               { return "Remove a product from the wishlist" }
func (c *UnwishCmd) Usage() string                  { return "caseshop unwish <product>" }
func (c *UnwishCmd) NeedsAuth() bool                { return false }
func (c *UnwishCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UnwishCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	ref := strings.Join(args, " ")
	if strings.TrimSpace(ref) == "" {
		return usageError(errOut, "product required")
	}
	id, err := strconv.Atoi(ref)
	if err != nil {
		p, perr := a.Product(ref)
		if perr != nil {
			return usageError(errOut, "%v", perr)
		}
		id = p.ID
	}
	if err := a.Cart.RemoveFromWishlist(ctx, id); err != nil {
		return fail(errOut, err)
	}
	return acknowledge(a, out)
}
