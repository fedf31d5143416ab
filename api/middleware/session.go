package middleware

import (
	"net/http"
	"strings"

	"github.com/nashwabd/storefront-backend/internal/session"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

const (
	sessionIDHeader = "X-Session-Id"
	sessionCookie   = "nashwa_session"
)

// Session resolves the shopper session from the request, creating one on
// first contact, and echoes the id back in both header and cookie.
func Session(registry *session.Registry, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if id == "" {
				if cookie, err := r.Cookie(sessionCookie); err == nil {
					id = strings.TrimSpace(cookie.Value)
				}
			}

			state := registry.Ensure(id)

			w.Header().Set(sessionIDHeader, state.ID)
			if state.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    state.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSessionID(r.Context(), state.ID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, state.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
