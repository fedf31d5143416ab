package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/concierge"
	"github.com/nashwabd/storefront-backend/internal/recent"
	"github.com/nashwabd/storefront-backend/internal/wishlist"
	"github.com/nashwabd/storefront-backend/pkg/config"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

// Registry owns all live shopper sessions. Sessions idle past the TTL are
// swept away, cart and all.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*State

	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

// NewRegistry builds an empty session registry.
func NewRegistry(cfg config.SessionConfig, logg *logger.Logger) (*Registry, error) {
	if cfg.TTL <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session ttl must be positive")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Registry{
		sessions: make(map[string]*State),
		ttl:      cfg.TTL,
		logger:   logg,
		now:      time.Now,
	}, nil
}

// NewSessionID mints an identifier for a fresh session.
func NewSessionID() string {
	return uuid.NewString()
}

// Ensure returns the session for the given id, creating it when absent, and
// refreshes its idle clock. A blank id gets a fresh session.
func (r *Registry) Ensure(id string) *State {
	now := r.now()

	if strings.TrimSpace(id) == "" {
		id = NewSessionID()
	}

	r.mu.RLock()
	state, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		state.Touch(now)
		return state
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.sessions[id]; ok {
		state.Touch(now)
		return state
	}
	state = newState(id, now)
	r.sessions[id] = state
	return state
}

// Lookup returns the session for the given id without creating one.
func (r *Registry) Lookup(id string) (*State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.sessions[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	return state, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle past the TTL and returns how many went.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	swept := 0
	for id, state := range r.sessions {
		if state.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			swept++
		}
	}
	return swept
}

// StartSweeper runs Sweep on the given interval until the context is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if swept := r.Sweep(); swept > 0 {
					swCtx := r.logger.WithField(ctx, "swept", swept)
					r.logger.Info(swCtx, "idle sessions swept")
				}
			}
		}
	}()
}

// CartOf resolves the cart for a live session.
func (r *Registry) CartOf(sessionID string) (*cart.Store, error) {
	state, err := r.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Cart, nil
}

// WishlistOf resolves the wishlist for a live session.
func (r *Registry) WishlistOf(sessionID string) (*wishlist.Store, error) {
	state, err := r.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Wishlist, nil
}

// RecentOf resolves the recently viewed tracker for a live session.
func (r *Registry) RecentOf(sessionID string) (*recent.Tracker, error) {
	state, err := r.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Recent, nil
}

// TranscriptOf resolves the concierge transcript for a live session.
func (r *Registry) TranscriptOf(sessionID string) (*concierge.Transcript, error) {
	state, err := r.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Transcript, nil
}
