package catalog

import (
	"sort"
	"strings"
)

// Query is the product view's filter state.
type Query struct {
	Category string
	Search   string
	SortKey  string
}

// FilterAndSort returns the products matching q, filtered first and then
// sorted. The input slice is not modified. Ties keep input order.
func FilterAndSort(products []Product, q Query) []Product {
	category := q.Category
	if category == "" {
		category = CategoryAll
	}
	search := strings.ToLower(q.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	switch q.SortKey {
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return ParsePrice(out[i].Price) < ParsePrice(out[j].Price)
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return lessName(out[i].Name, out[j].Name)
		})
	}
	return out
}

// ValidSortKey reports whether key is a known sort key.
func ValidSortKey(key string) bool {
	switch key {
	case SortName, SortPrice, SortRating:
		return true
	}
	return false
}

// ValidCategory reports whether value is a known category or "all".
func ValidCategory(value string) bool {
	for _, c := range Categories() {
		if c.Value == value {
			return true
		}
	}
	return false
}

// lessName orders names case-insensitively, falling back to byte order so
// "iPad" sorts between "Gaming" and "MacBook" rather than after both.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
