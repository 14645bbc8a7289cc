package catalog

import (
	"math"
	"strconv"
	"strings"

	"legacy/models"
)

// Filters is the storefront filter state. Category "ALL" (or "") passes every
// category; zero Min/Max means the bound is open on that side.
type Filters struct {
	Category string
	Search   string
	PriceMin float64
	PriceMax float64
}

// Filter returns the products passing all three predicates: category, search
// text and price range. Input order is preserved.
func Filter(products []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchCategory(p, f.Category) && matchSearch(p, f.Search) && matchPrice(p, f.PriceMin, f.PriceMax) {
			out = append(out, p)
		}
	}
	return out
}

// matchCategory passes on "ALL", or when the selected category is a
// case-insensitive substring of the product's category or its name. The name
// fallback keeps items like "NEW ARRIVALS Hoodie" visible under NEW ARRIVALS
// even when categorised elsewhere.
func matchCategory(p models.Product, category string) bool {
	if category == "" || strings.EqualFold(category, "ALL") {
		return true
	}
	want := strings.ToLower(category)
	return strings.Contains(strings.ToLower(p.Category), want) ||
		strings.Contains(strings.ToLower(p.Name), want)
}

func matchSearch(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	want := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), want) ||
		strings.Contains(strings.ToLower(p.Description), want)
}

// matchPrice parses the display price and requires it in [min, max]
// inclusive. A zero max leaves the range open above. A price with no digits
// ("Free") never matches a range.
func matchPrice(p models.Product, min, max float64) bool {
	v, ok := ParsePrice(p.Price)
	if !ok {
		return false
	}
	if max == 0 {
		max = math.MaxFloat64
	}
	return v >= min && v <= max
}

// ParsePrice strips every character that is not a digit or a decimal point
// and parses the remainder: "$1,234.50" -> 1234.50. ok is false when nothing
// numeric is left.
func ParsePrice(price string) (float64, bool) {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
