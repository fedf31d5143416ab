package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nashwabd/storefront-backend/api/middleware"
	cartsvc "github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/catalog"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error"), Output: io.Discard})
}

type stubCartService struct {
	dto cartsvc.DTO
	err error

	lastSessionID string
	lastProductID string
	lastDelta     int
}

func (s *stubCartService) View(ctx context.Context, sessionID string) (cartsvc.DTO, error) {
	s.lastSessionID = sessionID
	return s.dto, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (cartsvc.DTO, error) {
	s.lastSessionID = sessionID
	s.lastProductID = input.ProductID
	return s.dto, s.err
}

func (s *stubCartService) UpdateItem(ctx context.Context, sessionID, productID string, delta int) (cartsvc.DTO, error) {
	s.lastSessionID = sessionID
	s.lastProductID = productID
	s.lastDelta = delta
	return s.dto, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID, productID string) (cartsvc.DTO, error) {
	s.lastSessionID = sessionID
	s.lastProductID = productID
	return s.dto, s.err
}

func sessionContext(sessionID string) context.Context {
	return middleware.WithSessionID(context.Background(), sessionID)
}

func TestCartViewSuccess(t *testing.T) {
	stub := &stubCartService{dto: cartsvc.DTO{
		Items:    []cartsvc.Line{{Product: catalog.Product{ID: "n1", Name: "Nashwa Oud Royal", Price: 55000}, Quantity: 2}},
		Count:    2,
		Subtotal: 110000,
	}}
	handler := CartView(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data cartsvc.DTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 2 || envelope.Data.Subtotal != 110000 {
		t.Fatalf("unexpected cart snapshot: %+v", envelope.Data)
	}
	if stub.lastSessionID != "sess-1" {
		t.Fatalf("expected session id to reach service, got %q", stub.lastSessionID)
	}
}

func TestCartViewMissingSessionContext(t *testing.T) {
	handler := CartView(&stubCartService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestCartAddItemCreated(t *testing.T) {
	stub := &stubCartService{dto: cartsvc.DTO{Count: 1, Subtotal: 55000}}
	handler := CartAddItem(stub, testLogger())

	body := bytes.NewBufferString(`{"product_id":"n1","selected_color":"Amber Gold"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if stub.lastProductID != "n1" {
		t.Fatalf("expected product id n1, got %q", stub.lastProductID)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := CartAddItem(stub, testLogger())

	body := bytes.NewBufferString(`{"product_id":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestCartUpdateItemPassesDelta(t *testing.T) {
	stub := &stubCartService{}
	handler := CartUpdateItem(stub, testLogger())

	body := bytes.NewBufferString(`{"delta":-1}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/n1", body)
	req.Header.Set("Content-Type", "application/json")

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "n1")
	ctx := context.WithValue(sessionContext("sess-1"), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.lastProductID != "n1" || stub.lastDelta != -1 {
		t.Fatalf("expected delta -1 for n1, got %d for %q", stub.lastDelta, stub.lastProductID)
	}
}

func TestCartUpdateItemRejectsMissingDelta(t *testing.T) {
	stub := &stubCartService{}
	handler := CartUpdateItem(stub, testLogger())

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/n1", body)
	req.Header.Set("Content-Type", "application/json")

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "n1")
	ctx := context.WithValue(sessionContext("sess-1"), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	stub := &stubCartService{}
	handler := CartRemoveItem(stub, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/n3", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "n3")
	ctx := context.WithValue(sessionContext("sess-1"), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.lastProductID != "n3" {
		t.Fatalf("expected product id n3, got %q", stub.lastProductID)
	}
}

func TestCartNilService(t *testing.T) {
	handler := CartView(nil, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req = req.WithContext(sessionContext("sess-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
