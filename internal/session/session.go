package session

import (
	"sync"
	"time"

	"github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/concierge"
	"github.com/nashwabd/storefront-backend/internal/recent"
	"github.com/nashwabd/storefront-backend/internal/wishlist"
)

// State is everything the storefront remembers about one shopper. It lives in
// process memory only and dies with the session.
type State struct {
	ID        string
	CreatedAt time.Time

	Cart       *cart.Store
	Wishlist   *wishlist.Store
	Recent     *recent.Tracker
	Transcript *concierge.Transcript

	mu         sync.Mutex
	lastSeenAt time.Time
}

func newState(id string, now time.Time) *State {
	return &State{
		ID:         id,
		CreatedAt:  now,
		Cart:       cart.NewStore(),
		Wishlist:   wishlist.NewStore(),
		Recent:     recent.NewTracker(),
		Transcript: concierge.NewTranscript(),
		lastSeenAt: now,
	}
}

// Touch refreshes the session's idle clock.
func (s *State) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeenAt = now
}

// LastSeen returns the time of the session's most recent request.
func (s *State) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeenAt
}
