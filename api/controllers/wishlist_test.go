package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nashwabd/storefront-backend/internal/catalog"
	wishlistsvc "github.com/nashwabd/storefront-backend/internal/wishlist"
)

type stubWishlistService struct {
	dto    wishlistsvc.DTO
	toggle wishlistsvc.ToggleDTO
	err    error

	lastProductID string
}

func (s *stubWishlistService) View(ctx context.Context, sessionID string) (wishlistsvc.DTO, error) {
	return s.dto, s.err
}

func (s *stubWishlistService) Toggle(ctx context.Context, sessionID string, input wishlistsvc.ToggleInput) (wishlistsvc.ToggleDTO, error) {
	s.lastProductID = input.ProductID
	return s.toggle, s.err
}

func (s *stubWishlistService) Remove(ctx context.Context, sessionID, productID string) (wishlistsvc.DTO, error) {
	s.lastProductID = productID
	return s.dto, s.err
}

func TestWishlistViewSuccess(t *testing.T) {
	stub := &stubWishlistService{dto: wishlistsvc.DTO{
		Items: []catalog.Product{{ID: "n5", Name: "Hermès Birkin 30"}},
		Count: 1,
	}}
	handler := WishlistView(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil)
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data wishlistsvc.DTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 1 || envelope.Data.Items[0].ID != "n5" {
		t.Fatalf("unexpected wishlist: %+v", envelope.Data)
	}
}

func TestWishlistToggle(t *testing.T) {
	stub := &stubWishlistService{toggle: wishlistsvc.ToggleDTO{Wishlisted: true, DTO: wishlistsvc.DTO{Count: 1}}}
	handler := WishlistToggle(stub, testLogger())

	body := bytes.NewBufferString(`{"product_id":"n5"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", body)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data wishlistsvc.ToggleDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Wishlisted {
		t.Fatalf("expected wishlisted true, got %+v", envelope.Data)
	}
	if stub.lastProductID != "n5" {
		t.Fatalf("expected product id n5, got %q", stub.lastProductID)
	}
}

func TestWishlistToggleRejectsMissingProduct(t *testing.T) {
	handler := WishlistToggle(&stubWishlistService{}, testLogger())

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", body)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestWishlistRemove(t *testing.T) {
	stub := &stubWishlistService{}
	handler := WishlistRemove(stub, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/wishlist/n5", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "n5")
	ctx := context.WithValue(sessionContext("sess-1"), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.lastProductID != "n5" {
		t.Fatalf("expected product id n5, got %q", stub.lastProductID)
	}
}
