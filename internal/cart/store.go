package cart

import (
	"sync"

	"github.com/nashwabd/storefront-backend/internal/catalog"
)

// Line is one cart entry. Lines merge by product id; the color and size chosen
// on the first add stick to the line.
type Line struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedColor string          `json:"selectedColor,omitempty"`
	SelectedSize  string          `json:"selectedSize,omitempty"`
}

// Store holds one shopper's cart. It keeps insertion order and is safe for
// concurrent use.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the product in the cart. An existing line for the same
// product gains a unit instead of a second line appearing.
func (s *Store) Add(product catalog.Product, selectedColor, selectedSize string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{
		Product:       product,
		Quantity:      1,
		SelectedColor: selectedColor,
		SelectedSize:  selectedSize,
	})
}

// UpdateQuantity adjusts a line by delta. Quantity clamps at zero, and a line
// at zero disappears. Unknown product ids are ignored.
func (s *Store) UpdateQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		quantity := s.lines[i].Quantity + delta
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		return
	}
}

// Remove drops the line for the product. Removing an absent product is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the total number of units across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the cart value in integer BDT.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Product.Price * line.Quantity
	}
	return total
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
