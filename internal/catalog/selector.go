package catalog

import (
	"strings"

	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// Categories lists the storefront categories in display order. "All" is not a
// category; it is the absence of a category filter.
var Categories = []string{"Watches", "Electronics", "Perfumes", "Fashion", "Accessories"}

// Selector narrows the catalog to one category, or not at all. The zero value
// selects everything.
type Selector struct {
	category string
}

// AllProducts returns the selector that matches every product.
func AllProducts() Selector {
	return Selector{}
}

// CategoryNamed returns a selector for a single known category.
func CategoryNamed(name string) (Selector, error) {
	for _, category := range Categories {
		if strings.EqualFold(category, name) {
			return Selector{category: category}, nil
		}
	}
	return Selector{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown category").WithDetails(map[string]any{"category": name})
}

// ParseSelector interprets a query parameter. Empty and "All" mean no filter.
func ParseSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "All") {
		return AllProducts(), nil
	}
	return CategoryNamed(trimmed)
}

// IsAll reports whether the selector matches every product.
func (s Selector) IsAll() bool {
	return s.category == ""
}

// Category returns the selected category name, or "" when unfiltered.
func (s Selector) Category() string {
	return s.category
}

// Matches reports whether the product passes the category filter.
func (s Selector) Matches(p Product) bool {
	if s.IsAll() {
		return true
	}
	return p.Category == s.category
}
