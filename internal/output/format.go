// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caseshop/internal/cart"
	"caseshop/internal/catalog"
	"caseshop/internal/notify"
	"caseshop/internal/service"
	"caseshop/internal/tasks"
)

const (
	// Separator is the rule printed under section headers.
	Separator = "------------"

	nameWidth = 32
)

// Printer writes styled views to w. Colors are only emitted when w is a
// terminal that supports them.
type Printer struct {
	w io.Writer
	s styles
}

// New creates a Printer using the dark or light palette.
func New(w io.Writer, dark bool) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(dark)
	return &Printer{w: w, s: newStyles(r, dark)}
}

// Header prints a section title and a rule.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.w, p.s.header.Render(title))
	fmt.Fprintln(p.w, Separator)
}

// Line prints plain text.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Products prints one line per product.
// Format: "{ID:>4}  {NAME:<32} {PRICE:>8}  {RATING} ({REVIEWS})[  out of stock]"
func (p *Printer) Products(products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(p.w, p.s.muted.Render("no products match"))
		return
	}
	for _, pr := range products {
		name := p.s.name.Render(fmt.Sprintf("%-*s", nameWidth, normalizeTitle(pr.Name)))
		price := p.s.price.Render(fmt.Sprintf("%8s", pr.Price))
		line := fmt.Sprintf("%4d  %s %s  %.1f (%d)", pr.ID, name, price, pr.Rating, pr.Reviews)
		if !pr.InStock {
			line += "  " + p.s.warning.Render("out of stock")
		}
		fmt.Fprintln(p.w, line)
	}
}

// Cart prints the cart lines followed by the item count and total.
func (p *Printer) Cart(lines []cart.Line, count int, total float64) {
	if len(lines) == 0 {
		fmt.Fprintln(p.w, p.s.muted.Render("cart is empty"))
		return
	}
	for _, l := range lines {
		name := p.s.name.Render(fmt.Sprintf("%-*s", nameWidth, normalizeTitle(l.Name)))
		fmt.Fprintf(p.w, "%4d  %s %3d x %8s  %9s\n", l.ProductID, name, l.Quantity, l.Price, catalog.FormatPrice(l.Subtotal()))
	}
	fmt.Fprintln(p.w, Separator)
	fmt.Fprintf(p.w, "%d item(s)  total %s\n", count, p.s.price.Render(catalog.FormatPrice(total)))
}

// Wishlist prints the wishlisted products.
func (p *Printer) Wishlist(items []cart.WishItem) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, p.s.muted.Render("wishlist is empty"))
		return
	}
	for _, it := range items {
		name := p.s.name.Render(fmt.Sprintf("%-*s", nameWidth, normalizeTitle(it.Name)))
		fmt.Fprintf(p.w, "%4d  %s %8s\n", it.ProductID, name, it.Price)
	}
}

// Tasks prints tasks numbered from 1 in the given order.
// Format: "{N:>4}  [{STATUS}] {TITLE}  ({PRIORITY}, {CATEGORY})"
func (p *Printer) Tasks(list []service.Task) {
	if len(list) == 0 {
		fmt.Fprintln(p.w, p.s.muted.Render("no tasks"))
		return
	}
	for i, t := range list {
		p.Task(i+1, t)
	}
}

// Task prints one task line with its position.
func (p *Printer) Task(num int, t service.Task) {
	FormatTask(p.w, num, t, p.s.status(t.Status))
}

// FormatTask formats one task line.
func FormatTask(w io.Writer, num int, t service.Task, status lipgloss.Style) {
	fmt.Fprintf(w, "%4d  %s %s  (%s, %s)\n", num, status.Render(fmt.Sprintf("[%s]", t.Status)),
		normalizeTitle(t.Title), t.Priority, t.Category)
}

// Stats prints the task counters.
func (p *Printer) Stats(s tasks.Stats) {
	fmt.Fprintf(p.w, "total %d  completed %d  pending %d  in-progress %d\n",
		s.Total, s.Completed, s.Pending, s.InProgress)
}

// Toast prints a notification line.
func (p *Printer) Toast(t notify.Toast) {
	var st lipgloss.Style
	switch t.Kind {
	case notify.Error:
		st = p.s.error
	case notify.Warning:
		st = p.s.warning
	default:
		st = p.s.success
	}
	fmt.Fprintln(p.w, st.Render(t.Message))
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
