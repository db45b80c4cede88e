package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"caseshop/internal/app"
	"caseshop/internal/catalog"
	"caseshop/internal/exitcode"
	"caseshop/internal/output"
)

func init() {
	Register(&ProductsCmd{})
	Register(&CategoriesCmd{})
}

// ProductsCmd lists the catalog through the product filter.
type ProductsCmd struct {
	category string
	search   string
	sortKey  string
}

func (c *ProductsCmd) Name() string      { return "products" }
func (c *ProductsCmd) Aliases() []string { return []string{"shop"} }
func (c *ProductsCmd) Synopsis() string  { return "List products" }
func (c *ProductsCmd) Usage() string {
	return "caseshop products [--category <c>] [--search <text>] [--sort name|price|rating]"
}
func (c *ProductsCmd) NeedsAuth() bool { return false }

func (c *ProductsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", catalog.CategoryAll, "")
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.sortKey, "sort", catalog.SortName, "")
}

func (c *ProductsCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	if !catalog.ValidCategory(c.category) {
		return usageError(errOut, "unknown category: %s", c.category)
	}
	if !catalog.ValidSortKey(c.sortKey) {
		return usageError(errOut, "unknown sort key: %s", c.sortKey)
	}
	search := c.search
	if search == "" && len(args) > 0 {
		search = strings.Join(args, " ")
	}

	a.Nav.Navigate(app.PageProducts)
	list := catalog.FilterAndSort(a.Products, catalog.Query{
		Category: c.category,
		Search:   search,
		SortKey:  c.sortKey,
	})
	output.New(out, a.Prefs.DarkMode()).Products(list)
	return exitcode.Success
}

// CategoriesCmd lists the product categories.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Name() string                   { return "categories" }
func (c *CategoriesCmd) Aliases() []string              { return nil }
func (c *CategoriesCmd) Synopsis() string               { return "List product categories" }
func (c *CategoriesCmd) Usage() string                  { return "caseshop categories" }
func (c *CategoriesCmd) NeedsAuth() bool                { return false }
func (c *CategoriesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CategoriesCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	output.New(out, a.Prefs.DarkMode()).Categories(catalog.Categories())
	return exitcode.Success
}
