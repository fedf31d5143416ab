package recent

import (
	"fmt"
	"testing"

	"github.com/nashwabd/storefront-backend/internal/catalog"
)

func mustFind(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, err := catalog.Default().FindByID(id)
	if err != nil {
		t.Fatalf("find %s: %v", id, err)
	}
	return p
}

func TestRecordMovesRevisitedProductToFront(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(mustFind(t, "n1"))
	tracker.Record(mustFind(t, "n2"))
	tracker.Record(mustFind(t, "n1"))

	items := tracker.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "n1" || items[1].ID != "n2" {
		t.Fatalf("unexpected order %s, %s", items[0].ID, items[1].ID)
	}
}

func TestRecordNeverExceedsCapacity(t *testing.T) {
	tracker := NewTrackerWithCapacity(3)
	for i := 0; i < 20; i++ {
		tracker.Record(catalog.Product{ID: fmt.Sprintf("p%d", i), Name: "x", Price: 1})
	}

	items := tracker.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// Most recent first.
	if items[0].ID != "p19" || items[2].ID != "p17" {
		t.Fatalf("unexpected window %+v", items)
	}
}

func TestDefaultCapacityIsTen(t *testing.T) {
	tracker := NewTracker()
	for i := 0; i < 25; i++ {
		tracker.Record(catalog.Product{ID: fmt.Sprintf("p%d", i), Name: "x", Price: 1})
	}
	if got := len(tracker.Items()); got != DefaultCapacity {
		t.Fatalf("expected %d items, got %d", DefaultCapacity, got)
	}
}
