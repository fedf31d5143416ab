package cart

import (
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

func TestAddMergesLinesByProduct(t *testing.T) {
	store := NewStore()
	oud := mustFind(t, "n1")

	for i := 0; i < 5; i++ {
		store.Add(oud, "#3d2b1f", "50ml")
	}

	lines := store.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if store.Count() != 5 {
		t.Fatalf("expected count 5, got %d", store.Count())
	}
}

func TestAddKeepsFirstVariantChoice(t *testing.T) {
	store := NewStore()
	oud := mustFind(t, "n1")

	store.Add(oud, "#3d2b1f", "50ml")
	store.Add(oud, "#1a0f0a", "100ml")

	lines := store.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].SelectedColor != "#3d2b1f" || lines[0].SelectedSize != "50ml" {
		t.Fatalf("variant choice changed: %+v", lines[0])
	}
}

func TestUpdateQuantityClampsAtZero(t *testing.T) {
	store := NewStore()
	store.Add(mustFind(t, "n1"), "", "")

	store.UpdateQuantity("n1", -1000000)

	if len(store.Lines()) != 0 {
		t.Fatalf("expected line removed, got %+v", store.Lines())
	}
	if store.Count() != 0 || store.Subtotal() != 0 {
		t.Fatalf("expected empty cart, count=%d subtotal=%d", store.Count(), store.Subtotal())
	}
}

func TestAddAddMinusOneLeavesOne(t *testing.T) {
	store := NewStore()
	oud := mustFind(t, "n1")

	store.Add(oud, "", "")
	store.Add(oud, "", "")
	store.UpdateQuantity("n1", -1)

	lines := store.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", lines)
	}
	if store.Subtotal() != 55000 {
		t.Fatalf("expected subtotal 55000, got %d", store.Subtotal())
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	store := NewStore()
	store.Add(mustFind(t, "n2"), "", "")

	store.UpdateQuantity("nope", 3)

	lines := store.Lines()
	if len(lines) != 1 || lines[0].Product.ID != "n2" || lines[0].Quantity != 1 {
		t.Fatalf("unexpected cart %+v", lines)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Add(mustFind(t, "n1"), "", "")

	store.Remove("n1")
	store.Remove("n1")
	store.Remove("never-there")

	if len(store.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %+v", store.Lines())
	}
}

func TestSubtotalSumsAcrossLines(t *testing.T) {
	store := NewStore()
	store.Add(mustFind(t, "n1"), "", "") // 55000
	store.Add(mustFind(t, "n6"), "", "") // 42000
	store.UpdateQuantity("n6", 1)        // 2 x 42000

	if got := store.Subtotal(); got != 55000+2*42000 {
		t.Fatalf("expected subtotal %d, got %d", 55000+2*42000, got)
	}
	if store.Count() != 3 {
		t.Fatalf("expected count 3, got %d", store.Count())
	}
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Add(mustFind(t, "n3"), "", "")
	store.Add(mustFind(t, "n1"), "", "")
	store.Add(mustFind(t, "n3"), "", "")

	lines := store.Lines()
	if len(lines) != 2 || lines[0].Product.ID != "n3" || lines[1].Product.ID != "n1" {
		t.Fatalf("unexpected order %+v", lines)
	}
}
