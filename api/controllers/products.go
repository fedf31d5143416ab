package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nashwabd/storefront-backend/api/middleware"
	"github.com/nashwabd/storefront-backend/api/responses"
	"github.com/nashwabd/storefront-backend/internal/catalog"
	"github.com/nashwabd/storefront-backend/internal/recent"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

// RecentRecorder resolves the recently viewed tracker for a session.
type RecentRecorder interface {
	RecentOf(sessionID string) (*recent.Tracker, error)
}

// ProductsList returns the catalog, optionally narrowed by category and a
// free-text query.
func ProductsList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		selector, err := catalog.ParseSelector(r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		responses.WriteSuccess(w, map[string]any{
			"products": cat.Filter(selector, query),
		})
	}
}

// ProductsCategories returns the category names in display order.
func ProductsCategories(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"categories": catalog.Categories,
		})
	}
}

// ProductsDetail returns one product and records the view on the session's
// recently viewed list.
func ProductsDetail(cat *catalog.Catalog, recents RecentRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, err := cat.FindByID(productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if recents != nil {
			if sessionID := middleware.SessionIDFromContext(ctx); sessionID != "" {
				if tracker, err := recents.RecentOf(sessionID); err == nil {
					tracker.Record(product)
				}
			}
		}

		responses.WriteSuccess(w, product)
	}
}

// RecentlyViewed returns the session's viewing history, most recent first.
func RecentlyViewed(recents RecentRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if recents == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session registry unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		tracker, err := recents.RecentOf(sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products": tracker.Items(),
		})
	}
}
