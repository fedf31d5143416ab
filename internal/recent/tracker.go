package recent

import (
	"sync"

	"github.com/nashwabd/storefront-backend/internal/catalog"
)

// DefaultCapacity bounds the recently viewed list.
const DefaultCapacity = 10

// Tracker remembers the products a shopper looked at, most recent first. A
// revisited product moves to the front instead of duplicating. It is safe for
// concurrent use.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	items    []catalog.Product
}

// NewTracker returns a tracker bounded at DefaultCapacity.
func NewTracker() *Tracker {
	return NewTrackerWithCapacity(DefaultCapacity)
}

// NewTrackerWithCapacity returns a tracker bounded at the given capacity.
func NewTrackerWithCapacity(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{capacity: capacity}
}

// Record marks the product as viewed, moving it to the front.
func (t *Tracker) Record(product catalog.Product) {
	t.mu.Lock()
	defer t.mu.Unlock()

	filtered := t.items[:0]
	for _, item := range t.items {
		if item.ID != product.ID {
			filtered = append(filtered, item)
		}
	}
	t.items = append([]catalog.Product{product}, filtered...)
	if len(t.items) > t.capacity {
		t.items = t.items[:t.capacity]
	}
}

// Items returns a copy of the viewed products, most recent first.
func (t *Tracker) Items() []catalog.Product {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]catalog.Product, len(t.items))
	copy(out, t.items)
	return out
}
