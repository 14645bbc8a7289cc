package catalog

import (
	"testing"

	"legacy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Legacy Tee", Price: "$20", Category: "CLOTHING", Description: "Heavyweight cotton tee"},
		{Name: "Runner Pro", Price: "$180", Category: "SHOES", Description: "Lightweight running shoe"},
		{Name: "Canvas Tote", Price: "$45.50", Category: "ACCESSORIES", Description: "Everyday carry bag"},
		{Name: "Preset Pack Vol. 1", Price: "$1,234.50", Category: "DIGITAL PRODUCTS", Description: "Editing presets"},
		{Name: "Sticker Sheet", Price: "Free", Category: "ACCESSORIES", Description: "Brand stickers"},
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$180", 180, true},
		{"$1,234.50", 1234.50, true},
		{"20", 20, true},
		{"$45.50", 45.50, true},
		{"Free", 0, false},
		{"", 0, false},
		{"N/A", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		assert.Equal(t, tt.ok, ok, "ParsePrice(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParsePrice(%q)", tt.in)
	}
}

func TestFilter_CategoryPredicate(t *testing.T) {
	products := sampleProducts()

	t.Run("ALL passes everything with a parseable price", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL"})
		// "Free" has no digits, so the price predicate drops it even here
		assert.ElementsMatch(t, []string{"Legacy Tee", "Runner Pro", "Canvas Tote", "Preset Pack Vol. 1"}, names(got))
	})

	t.Run("case-insensitive category match", func(t *testing.T) {
		got := Filter(products, Filters{Category: "shoes"})
		require.Len(t, got, 1)
		assert.Equal(t, "Runner Pro", got[0].Name)
	})

	t.Run("substring of category", func(t *testing.T) {
		got := Filter(products, Filters{Category: "DIGITAL"})
		require.Len(t, got, 1)
		assert.Equal(t, "Preset Pack Vol. 1", got[0].Name)
	})

	t.Run("matches product name as well as category", func(t *testing.T) {
		// "tote" is nowhere in a category but is in a product name
		got := Filter(products, Filters{Category: "tote"})
		require.Len(t, got, 1)
		assert.Equal(t, "Canvas Tote", got[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		got := Filter(products, Filters{Category: "FURNITURE"})
		assert.Empty(t, got)
	})
}

func TestFilter_SearchPredicate(t *testing.T) {
	products := sampleProducts()

	t.Run("empty search passes", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", Search: ""})
		assert.Len(t, got, 4)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", Search: "RUNNER"})
		require.Len(t, got, 1)
		assert.Equal(t, "Runner Pro", got[0].Name)
	})

	t.Run("matches description", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", Search: "cotton"})
		require.Len(t, got, 1)
		assert.Equal(t, "Legacy Tee", got[0].Name)
	})
}

func TestFilter_PricePredicate(t *testing.T) {
	products := sampleProducts()

	t.Run("inclusive bounds", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", PriceMin: 20, PriceMax: 180})
		assert.ElementsMatch(t, []string{"Legacy Tee", "Runner Pro", "Canvas Tote"}, names(got))
	})

	t.Run("thousands separator parses", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", PriceMin: 1234.50, PriceMax: 1234.50})
		require.Len(t, got, 1)
		assert.Equal(t, "Preset Pack Vol. 1", got[0].Name)
	})

	t.Run("malformed price excluded from every range", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", PriceMin: 0, PriceMax: 1000000})
		for _, p := range got {
			assert.NotEqual(t, "Sticker Sheet", p.Name)
		}
	})

	t.Run("zero max leaves the range open", func(t *testing.T) {
		got := Filter(products, Filters{Category: "ALL", PriceMin: 1000})
		require.Len(t, got, 1)
		assert.Equal(t, "Preset Pack Vol. 1", got[0].Name)
	})
}

func TestFilter_PredicatesCombineWithAND(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, Filters{Category: "ACCESSORIES", Search: "bag", PriceMin: 40, PriceMax: 50})
	require.Len(t, got, 1)
	assert.Equal(t, "Canvas Tote", got[0].Name)

	// same category and price, search knocks it out
	got = Filter(products, Filters{Category: "ACCESSORIES", Search: "shoe", PriceMin: 40, PriceMax: 50})
	assert.Empty(t, got)

	// category excludes a product that search and price would keep
	got = Filter(products, Filters{Category: "SHOES", Search: "tee", PriceMax: 100})
	assert.Empty(t, got)
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, Filters{Category: "ALL"})
	assert.Equal(t, []string{"Legacy Tee", "Runner Pro", "Canvas Tote", "Preset Pack Vol. 1"}, names(got))
}
