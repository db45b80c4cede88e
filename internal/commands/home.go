package commands

import (
	"context"
	"flag"
	"io"
	"sort"

	"caseshop/internal/app"
	"caseshop/internal/catalog"
	"caseshop/internal/exitcode"
	"caseshop/internal/output"
)

func init() {
	Register(&HomeCmd{})
	Register(&ShowCmd{})
}

// featuredCount is how many top-rated products the home screen shows.
const featuredCount = 3

// HomeCmd renders the home screen. It is also what a bare `caseshop` runs.
type HomeCmd struct{}

func (c *HomeCmd) Name() string                   { return "home" }
func (c *HomeCmd) Aliases() []string              { return nil }
func (c *HomeCmd) Synopsis() string               { return "Show the home screen" }
func (c *HomeCmd) Usage() string                  { return "caseshop home" }
func (c *HomeCmd) NeedsAuth() bool                { return false }
func (c *HomeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HomeCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	return render(ctx, a, app.PageHome, out, errOut)
}

// ShowCmd renders any page through the composer.
type ShowCmd struct{}

func (c *ShowCmd) Name() string                   { return "show" }
func (c *ShowCmd) Aliases() []string              { return []string{"open"} }
func (c *ShowCmd) Synopsis() string               { return "Show a page (home, products, dashboard, profile)" }
func (c *ShowCmd) Usage() string                  { return "caseshop show <page>" }
func (c *ShowCmd) NeedsAuth() bool                { return false }
func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		return usageError(errOut, "page required")
	}
	page, err := app.ParsePage(args[0])
	if err != nil {
		return usageError(errOut, "%v", err)
	}
	return render(ctx, a, page, out, errOut)
}

// render draws the screen the composer picks for page.
func render(ctx context.Context, a *app.App, page app.Page, out, errOut io.Writer) int {
	p := output.New(out, a.Prefs.DarkMode())
	sess := a.Session.Current()

	switch a.Show(page) {
	case app.ScreenRestricted:
		p.Restricted(page)
		return exitcode.AuthError
	case app.ScreenProducts:
		p.Header("Products")
		p.Products(catalog.FilterAndSort(a.Products, catalog.Query{}))
	case app.ScreenDashboard:
		p.Header("Task Dashboard")
		p.Stats(a.Tasks.Stats())
		p.Line("")
		p.Tasks(a.Tasks.Tasks())
	case app.ScreenProfile:
		summary, err := a.Profile()
		if err != nil {
			return fail(errOut, err)
		}
		p.Profile(summary)
	default:
		name := ""
		if sess.User != nil {
			name = sess.User.Name
		}
		p.Home(featured(a.Products), name, a.Cart.ItemCount())
	}
	return exitcode.Success
}

// featured returns the top-rated products, ties in catalog order.
func featured(products []catalog.Product) []catalog.Product {
	out := catalog.FilterAndSort(products, catalog.Query{SortKey: catalog.SortRating})
	sort.SliceStable(out, func(i, j int) bool { return out[i].InStock && !out[j].InStock })
	if len(out) > featuredCount {
		out = out[:featuredCount]
	}
	return out
}
