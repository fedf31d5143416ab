package session

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nashwabd/storefront-backend/pkg/config"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	reg, err := NewRegistry(config.SessionConfig{TTL: ttl, SweepInterval: time.Minute}, logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.ErrorLevel,
		Output:      io.Discard,
	}))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg
}

func TestEnsureCreatesAndReuses(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	first := reg.Ensure("")
	if first.ID == "" {
		t.Fatal("expected minted session id")
	}
	if first.Cart == nil || first.Wishlist == nil || first.Recent == nil || first.Transcript == nil {
		t.Fatal("expected fully initialized state")
	}

	again := reg.Ensure(first.ID)
	if again != first {
		t.Fatal("expected the same state for the same id")
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", reg.Len())
	}
}

func TestLookupUnknownSession(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	_, err := reg.Lookup("ghost")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSweepDropsIdleSessions(t *testing.T) {
	reg := newTestRegistry(t, 30*time.Minute)
	base := time.Now()
	reg.now = func() time.Time { return base }

	idle := reg.Ensure("")
	fresh := reg.Ensure("")

	// Only one of the two keeps making requests.
	reg.now = func() time.Time { return base.Add(29 * time.Minute) }
	reg.Ensure(fresh.ID)

	reg.now = func() time.Time { return base.Add(31 * time.Minute) }
	if swept := reg.Sweep(); swept != 1 {
		t.Fatalf("expected 1 swept session, got %d", swept)
	}

	if _, err := reg.Lookup(idle.ID); err == nil {
		t.Fatal("idle session must be gone")
	}
	if _, err := reg.Lookup(fresh.ID); err != nil {
		t.Fatalf("fresh session must survive: %v", err)
	}
}

func TestAccessorsResolvePerSessionState(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)
	state := reg.Ensure("")

	cartStore, err := reg.CartOf(state.ID)
	if err != nil {
		t.Fatalf("cart of: %v", err)
	}
	if cartStore != state.Cart {
		t.Fatal("expected the session's own cart")
	}

	if _, err := reg.CartOf("ghost"); err == nil {
		t.Fatal("expected error for unknown session")
	}
	if _, err := reg.WishlistOf(state.ID); err != nil {
		t.Fatalf("wishlist of: %v", err)
	}
	if _, err := reg.RecentOf(state.ID); err != nil {
		t.Fatalf("recent of: %v", err)
	}
	if _, err := reg.TranscriptOf(state.ID); err != nil {
		t.Fatalf("transcript of: %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)
	a := reg.Ensure("")
	b := reg.Ensure("")

	if a.Cart == b.Cart || a.Wishlist == b.Wishlist {
		t.Fatal("sessions must not share state")
	}
}
