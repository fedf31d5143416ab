package catalog

import (
	"testing"

	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	cat := Default()
	products := cat.Products()
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			t.Fatalf("malformed product %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if _, err := CategoryNamed(p.Category); err != nil {
			t.Fatalf("product %s has unknown category %q", p.ID, p.Category)
		}
	}
}

func TestFindByID(t *testing.T) {
	cat := Default()

	p, err := cat.FindByID("n1")
	if err != nil {
		t.Fatalf("find n1: %v", err)
	}
	if p.Name != "Nashwa Oud Royal" || p.Price != 55000 || p.OriginalPrice != 65000 {
		t.Fatalf("unexpected product %+v", p)
	}

	_, err = cat.FindByID("nope")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestParseSelector(t *testing.T) {
	for _, raw := range []string{"", "All", "all"} {
		sel, err := ParseSelector(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if !sel.IsAll() {
			t.Fatalf("expected %q to select all", raw)
		}
	}

	sel, err := ParseSelector("Perfumes")
	if err != nil {
		t.Fatalf("parse Perfumes: %v", err)
	}
	if sel.Category() != "Perfumes" {
		t.Fatalf("unexpected category %q", sel.Category())
	}

	if _, err := ParseSelector("Spaceships"); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFilterByCategory(t *testing.T) {
	cat := Default()
	sel, err := CategoryNamed("Perfumes")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	got := cat.Filter(sel, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 perfumes, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "Perfumes" {
			t.Fatalf("filter let through %+v", p)
		}
	}
	// Display order is preserved.
	if got[0].ID != "n1" || got[1].ID != "n6" {
		t.Fatalf("unexpected order %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterByQuery(t *testing.T) {
	cat := Default()

	got := cat.Filter(AllProducts(), "oud")
	if len(got) != 1 || got[0].ID != "n1" {
		t.Fatalf("expected only n1 for query oud, got %+v", got)
	}

	// Matches description as well as name, case-insensitively.
	got = cat.Filter(AllProducts(), "SPATIAL")
	if len(got) != 1 || got[0].ID != "n7" {
		t.Fatalf("expected only n7 for query SPATIAL, got %+v", got)
	}

	if got := cat.Filter(AllProducts(), "zzz-no-such"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterCombinesCategoryAndQuery(t *testing.T) {
	cat := Default()
	sel, err := CategoryNamed("Electronics")
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	got := cat.Filter(sel, "sound")
	if len(got) != 1 || got[0].ID != "n4" {
		t.Fatalf("expected only n4, got %+v", got)
	}
}
