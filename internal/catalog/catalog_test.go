package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseshop/internal/catalog"
)

func names(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func prices(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Price
	}
	return out
}

func TestFilterAndSort_PriceAscending(t *testing.T) {
	in := []catalog.Product{
		{ID: 1, Name: "A", Category: "premium", Price: "$79.99"},
		{ID: 2, Name: "B", Category: "skins", Price: "$34.99"},
		{ID: 3, Name: "C", Category: "laptop", Price: "$129.99"},
	}

	got := catalog.FilterAndSort(in, catalog.Query{Category: "all", SortKey: catalog.SortPrice})

	assert.Equal(t, []string{"$34.99", "$79.99", "$129.99"}, prices(got))
	assert.Equal(t, "$79.99", in[0].Price, "input must not be reordered")
}

func TestFilterAndSort_Category(t *testing.T) {
	got := catalog.FilterAndSort(catalog.Products(), catalog.Query{Category: "skins", SortKey: catalog.SortName})
	require.Len(t, got, 1)
	assert.Equal(t, "Galaxy S24 Ultra Premium Skin", got[0].Name)
}

func TestFilterAndSort_SearchCaseInsensitiveSubstring(t *testing.T) {
	got := catalog.FilterAndSort(catalog.Products(), catalog.Query{Category: "all", Search: "CASE", SortKey: catalog.SortName})
	assert.Equal(t, []string{
		"AirPods Pro 2 Luxury Case",
		"Gaming Phone Cooler Case",
		"iPhone 16 Pro Max Elite Case",
		"MacBook Pro Armor Case",
	}, names(got))
}

func TestFilterAndSort_CategoryAndSearch(t *testing.T) {
	got := catalog.FilterAndSort(catalog.Products(), catalog.Query{Category: "laptop", Search: "galaxy"})
	assert.Empty(t, got)
}

func TestFilterAndSort_RatingDescendingStable(t *testing.T) {
	got := catalog.FilterAndSort(catalog.Products(), catalog.Query{SortKey: catalog.SortRating})
	// Ties at 4.9 and 4.8 keep catalog order.
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, ids(got))
}

func TestFilterAndSort_NameDefault(t *testing.T) {
	got := catalog.FilterAndSort(catalog.Products(), catalog.Query{SortKey: "bogus"})
	assert.Equal(t, []string{
		"AirPods Pro 2 Luxury Case",
		"Galaxy S24 Ultra Premium Skin",
		"Gaming Phone Cooler Case",
		"iPad Air Custom Folio",
		"iPhone 16 Pro Max Elite Case",
		"MacBook Pro Armor Case",
	}, names(got))
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	q := catalog.Query{Category: "all", Search: "pro", SortKey: catalog.SortPrice}
	once := catalog.FilterAndSort(catalog.Products(), q)
	twice := catalog.FilterAndSort(once, q)
	assert.Equal(t, once, twice)
}

func ids(ps []catalog.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 79.99, catalog.ParsePrice("$79.99"))
	assert.Equal(t, 1299.5, catalog.ParsePrice("$1,299.50"))
	assert.Equal(t, 0.0, catalog.ParsePrice("free"))
	assert.Equal(t, "$12.30", catalog.FormatPrice(12.3))
}

func TestResolve(t *testing.T) {
	ps := catalog.Products()

	p, err := catalog.Resolve(ps, "3")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro Armor Case", p.Name)

	p, err = catalog.Resolve(ps, "folio")
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)

	_, err = catalog.Resolve(ps, "99")
	assert.ErrorContains(t, err, "product not found")

	_, err = catalog.Resolve(ps, "pro")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = catalog.Resolve(ps, " ")
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.True(t, catalog.ValidCategory("all"))
	assert.True(t, catalog.ValidCategory("gaming"))
	assert.False(t, catalog.ValidCategory("phones"))
	assert.True(t, catalog.ValidSortKey("rating"))
	assert.False(t, catalog.ValidSortKey("newest"))
}
