package wishlist

import (
	"context"
	"strings"

	"github.com/nashwabd/storefront-backend/internal/catalog"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// Wishlists resolves the wishlist belonging to a shopper session.
type Wishlists interface {
	WishlistOf(sessionID string) (*Store, error)
}

// ToggleInput carries the payload for toggling a product.
type ToggleInput struct {
	ProductID string `json:"product_id" validate:"required"`
}

// DTO is the wishlist snapshot returned to clients.
type DTO struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

// ToggleDTO reports the post-toggle state alongside the snapshot.
type ToggleDTO struct {
	Wishlisted bool `json:"wishlisted"`
	DTO
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Catalog   *catalog.Catalog
	Wishlists Wishlists
}

// Service exposes business rules for wishlist management.
type Service interface {
	View(ctx context.Context, sessionID string) (DTO, error)
	Toggle(ctx context.Context, sessionID string, input ToggleInput) (ToggleDTO, error)
	Remove(ctx context.Context, sessionID, productID string) (DTO, error)
}

type service struct {
	catalog   *catalog.Catalog
	wishlists Wishlists
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Wishlists == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist source is required")
	}
	return &service{
		catalog:   params.Catalog,
		wishlists: params.Wishlists,
	}, nil
}

// View returns the session's wishlist snapshot.
func (s *service) View(ctx context.Context, sessionID string) (DTO, error) {
	store, err := s.wishlists.WishlistOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	return snapshot(store), nil
}

// Toggle flips the product's wishlisted state.
func (s *service) Toggle(ctx context.Context, sessionID string, input ToggleInput) (ToggleDTO, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return ToggleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.catalog.FindByID(input.ProductID)
	if err != nil {
		return ToggleDTO{}, err
	}
	store, err := s.wishlists.WishlistOf(sessionID)
	if err != nil {
		return ToggleDTO{}, err
	}
	wishlisted := store.Toggle(product)
	return ToggleDTO{Wishlisted: wishlisted, DTO: snapshot(store)}, nil
}

// Remove drops the product from the wishlist regardless of prior state.
func (s *service) Remove(ctx context.Context, sessionID, productID string) (DTO, error) {
	if strings.TrimSpace(productID) == "" {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	store, err := s.wishlists.WishlistOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	store.Remove(productID)
	return snapshot(store), nil
}

func snapshot(store *Store) DTO {
	return DTO{
		Items: store.Items(),
		Count: store.Count(),
	}
}
