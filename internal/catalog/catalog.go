package catalog

import (
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// Catalog is the immutable product inventory. All lookups preserve the seeded
// display order.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New builds a catalog over the provided products.
func New(products []Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the compiled-in storefront inventory.
func Default() *Catalog {
	return New(seedProducts)
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID returns the product with the given identifier.
func (c *Catalog) FindByID(id string) (Product, error) {
	if idx, ok := c.byID[id]; ok {
		return c.products[idx], nil
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"product_id": id})
}

// Has reports whether a product with the given identifier exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}
