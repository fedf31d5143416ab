package controllers

import (
	"net/http"

	"github.com/nashwabd/storefront-backend/api/middleware"
	"github.com/nashwabd/storefront-backend/api/responses"
	"github.com/nashwabd/storefront-backend/api/validators"
	"github.com/nashwabd/storefront-backend/internal/concierge"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

// ConciergeHistory returns the session's conversation so far.
func ConciergeHistory(svc concierge.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "concierge service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		resp, err := svc.History(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// ConciergeSend appends a shopper message and returns the updated transcript.
func ConciergeSend(svc concierge.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "concierge service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		var payload concierge.SendInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resp, err := svc.Send(ctx, sessionID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
