package output

import (
	"fmt"

	"caseshop/internal/app"
	"caseshop/internal/catalog"
)

// Home prints the landing screen.
func (p *Printer) Home(featured []catalog.Product, signedInAs string, cartItems int) {
	p.Header("caseshop")
	fmt.Fprintln(p.w, "Premium cases and skins for every device.")
	if signedInAs != "" {
		fmt.Fprintf(p.w, "Signed in as %s\n", signedInAs)
	} else {
		fmt.Fprintln(p.w, p.s.muted.Render("Not signed in (caseshop login)"))
	}
	fmt.Fprintf(p.w, "Cart: %d item(s)\n", cartItems)
	fmt.Fprintln(p.w)
	p.Header("Featured")
	p.Products(featured)
}

// Categories prints the catalog categories.
func (p *Printer) Categories(cats []catalog.Category) {
	for _, c := range cats {
		fmt.Fprintf(p.w, "%-12s %s\n", c.Value, p.s.muted.Render(c.Label))
	}
}

// Restricted prints the sign-in wall for a gated page.
func (p *Printer) Restricted(page app.Page) {
	switch page {
	case app.PageProfile:
		p.Header("Profile Access Required")
		fmt.Fprintln(p.w, "Please login to view your profile and account settings")
	default:
		p.Header("Access Restricted")
		fmt.Fprintln(p.w, "Please login to access the task dashboard and business management tools")
	}
	fmt.Fprintln(p.w, p.s.muted.Render("Run: caseshop login --email <email> --password <password>"))
}

// Profile prints the profile summary.
func (p *Printer) Profile(s app.ProfileSummary) {
	p.Header(s.User.Name)
	fmt.Fprintf(p.w, "email         %s\n", s.User.Email)
	if !s.User.CreatedAt.IsZero() {
		fmt.Fprintf(p.w, "member since  %s\n", s.User.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(p.w, "tasks         %d (%d completed)\n", s.Tasks.Total, s.Tasks.Completed)
	fmt.Fprintf(p.w, "cart          %d item(s), %s\n", s.CartItems, p.s.price.Render(catalog.FormatPrice(s.TotalSpent)))
	fmt.Fprintf(p.w, "wishlist      %d item(s)\n", s.WishlistItems)
}
