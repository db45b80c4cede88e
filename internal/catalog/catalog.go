// Package catalog holds the product list and the filter/sort used by the
// product view.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// CategoryAll matches every product.
const CategoryAll = "all"

// Sort keys.
const (
	SortName   = "name"
	SortPrice  = "price"
	SortRating = "rating"
)

// Product is one catalog entry. Prices keep their display form ("$79.99").
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Description   string   `json:"description,omitempty"`
	InStock       bool     `json:"inStock"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features,omitempty"`
}

// Category is a filter option.
type Category struct {
	Value string
	Label string
}

// ParsePrice returns the numeric magnitude of a display price, with the
// currency symbol and thousands separators stripped. Unparseable prices are 0.
func ParsePrice(price string) float64 {
	s := strings.TrimSpace(price)
	s = strings.TrimLeft(s, "$€£¥ ")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatPrice renders an amount the way catalog prices are written.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Find returns the product with id.
func Find(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Resolve finds a product by numeric id or by a case-insensitive name
// fragment that matches exactly one product.
func Resolve(products []Product, ref string) (Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Product{}, fmt.Errorf("product reference required")
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if p, ok := Find(products, id); ok {
			return p, nil
		}
		return Product{}, fmt.Errorf("product not found: %s", ref)
	}

	needle := strings.ToLower(ref)
	var matches []Product
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if name == needle {
			return p, nil
		}
		if strings.Contains(name, needle) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return Product{}, fmt.Errorf("product not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return Product{}, fmt.Errorf("ambiguous product: %s", ref)
	}
}
