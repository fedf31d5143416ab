package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nashwabd/storefront-backend/internal/auth"
	"github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/catalog"
	"github.com/nashwabd/storefront-backend/internal/checkout"
	"github.com/nashwabd/storefront-backend/internal/concierge"
	sessionstore "github.com/nashwabd/storefront-backend/internal/session"
	"github.com/nashwabd/storefront-backend/internal/wishlist"
	"github.com/nashwabd/storefront-backend/pkg/auth/session"
	"github.com/nashwabd/storefront-backend/pkg/config"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Session.TTL = 30 * time.Minute
	cfg.Session.SweepInterval = 5 * time.Minute
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.Issuer = "nashwa-test"
	cfg.JWT.ExpirationMinutes = 15
	cfg.JWT.RefreshTokenTTLMinutes = 60 * 24
	cfg.Checkout.DeliveryFee = 150
	cfg.Checkout.Currency = "BDT"
	return cfg
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error"), Output: io.Discard})

	registry, err := sessionstore.NewRegistry(cfg.Session, logg)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	sessionManager, err := session.NewMemoryManager(cfg.JWT)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}

	cat := catalog.Default()

	cartService, err := cart.NewService(cart.ServiceParams{Catalog: cat, Carts: registry})
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{Catalog: cat, Wishlists: registry})
	if err != nil {
		t.Fatalf("new wishlist service: %v", err)
	}
	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Catalog: cat,
		Gateway: checkout.NewSimulatedGateway(cfg.Checkout),
		Config:  cfg.Checkout,
		Logger:  logg,
	})
	if err != nil {
		t.Fatalf("new checkout service: %v", err)
	}
	conciergeService, err := concierge.NewService(concierge.ServiceParams{
		Transcripts: registry,
		Generator:   concierge.NewOfflineGenerator(),
		Logger:      logg,
	})
	if err != nil {
		t.Fatalf("new concierge service: %v", err)
	}
	authService, err := auth.NewService(auth.ServiceParams{
		Accounts:       auth.NewAccounts(),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}

	return NewRouter(
		cfg,
		logg,
		nil,
		registry,
		sessionManager,
		nil,
		nil,
		cat,
		cartService,
		wishlistService,
		checkoutService,
		conciergeService,
		authService,
	)
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterIssuesSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatal("expected session id header on response")
	}

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "nashwa_session" && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie on first visit")
	}
}

func TestRouterCartFlow(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"product_id":"n1"}`)
	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	addReq.Header.Set("Content-Type", "application/json")
	addRec := httptest.NewRecorder()
	router.ServeHTTP(addRec, addReq)

	if addRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", addRec.Code, addRec.Body.String())
	}
	sessionID := addRec.Header().Get("X-Session-Id")
	if sessionID == "" {
		t.Fatal("expected session id header")
	}

	viewReq := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	viewReq.Header.Set("X-Session-Id", sessionID)
	viewRec := httptest.NewRecorder()
	router.ServeHTTP(viewRec, viewReq)

	if viewRec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", viewRec.Code)
	}
	var envelope struct {
		Data cart.DTO `json:"data"`
	}
	if err := json.NewDecoder(viewRec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 1 || envelope.Data.Subtotal != 55000 {
		t.Fatalf("unexpected cart: %+v", envelope.Data)
	}
}

func TestRouterSessionsIsolated(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"product_id":"n2"}`)
	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
	addReq.Header.Set("Content-Type", "application/json")
	addRec := httptest.NewRecorder()
	router.ServeHTTP(addRec, addReq)
	if addRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", addRec.Code)
	}

	otherReq := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	otherRec := httptest.NewRecorder()
	router.ServeHTTP(otherRec, otherReq)

	var envelope struct {
		Data cart.DTO `json:"data"`
	}
	if err := json.NewDecoder(otherRec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 0 {
		t.Fatalf("expected empty cart for fresh session, got %+v", envelope.Data)
	}
}

func TestRouterAuthMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRouterRegisterThenMe(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"name":"Nadia","email":"nadia@example.com","password":"velvetnoir"}`)
	regReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	regReq.Header.Set("Content-Type", "application/json")
	regRec := httptest.NewRecorder()
	router.ServeHTTP(regRec, regReq)

	if regRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", regRec.Code, regRec.Body.String())
	}
	var envelope struct {
		Data auth.AuthResponse `json:"data"`
	}
	if err := json.NewDecoder(regRec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	meReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, meReq)

	if meRec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", meRec.Code, meRec.Body.String())
	}
	var meEnvelope struct {
		Data auth.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(meRec.Body).Decode(&meEnvelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if meEnvelope.Data.Email != "nadia@example.com" {
		t.Fatalf("unexpected account: %+v", meEnvelope.Data)
	}
}
