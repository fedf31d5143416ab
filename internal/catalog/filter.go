package catalog

import "strings"

// Filter returns the products matching the selector and, when query is
// non-empty, a case-insensitive substring match on name or description.
// Order is stable.
func (c *Catalog) Filter(sel Selector, query string) []Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if !sel.Matches(p) {
			continue
		}
		if needle != "" && !matchesQuery(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
