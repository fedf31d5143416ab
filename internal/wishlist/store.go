package wishlist

import (
	"sync"

	"github.com/nashwabd/storefront-backend/internal/catalog"
)

// Store holds one shopper's wishlist as an ordered set of products. It is safe
// for concurrent use.
type Store struct {
	mu    sync.Mutex
	items []catalog.Product
}

// NewStore returns an empty wishlist.
func NewStore() *Store {
	return &Store{}
}

// Toggle adds the product when absent and removes it when present. It returns
// true when the product ends up wishlisted.
func (s *Store) Toggle(product catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, product)
	return true
}

// Remove drops the product from the wishlist. Removing an absent product is a
// no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether the product is wishlisted.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist in insertion order.
func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of wishlisted products.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
