package cart

import (
	"context"
	"strings"

	"github.com/nashwabd/storefront-backend/internal/catalog"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// Carts resolves the cart belonging to a shopper session.
type Carts interface {
	CartOf(sessionID string) (*Store, error)
}

// AddItemInput carries the payload for adding a product to the cart.
type AddItemInput struct {
	ProductID     string `json:"product_id" validate:"required"`
	SelectedColor string `json:"selected_color,omitempty"`
	SelectedSize  string `json:"selected_size,omitempty"`
}

// DTO is the cart snapshot returned to clients.
type DTO struct {
	Items    []Line `json:"items"`
	Count    int    `json:"count"`
	Subtotal int    `json:"subtotal"`
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Catalog *catalog.Catalog
	Carts   Carts
}

// Service exposes business rules for cart management.
type Service interface {
	View(ctx context.Context, sessionID string) (DTO, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (DTO, error)
	UpdateItem(ctx context.Context, sessionID, productID string, delta int) (DTO, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (DTO, error)
}

type service struct {
	catalog *catalog.Catalog
	carts   Carts
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart source is required")
	}
	return &service{
		catalog: params.Catalog,
		carts:   params.Carts,
	}, nil
}

// View returns the session's cart snapshot.
func (s *service) View(ctx context.Context, sessionID string) (DTO, error) {
	store, err := s.carts.CartOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	return snapshot(store), nil
}

// AddItem validates the product and adds one unit to the session's cart.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (DTO, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.catalog.FindByID(input.ProductID)
	if err != nil {
		return DTO{}, err
	}
	if err := validateOption(input.SelectedColor, product.Colors, "selected color"); err != nil {
		return DTO{}, err
	}
	if err := validateOption(input.SelectedSize, product.Sizes, "selected size"); err != nil {
		return DTO{}, err
	}

	store, err := s.carts.CartOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	store.Add(product, input.SelectedColor, input.SelectedSize)
	return snapshot(store), nil
}

// UpdateItem adjusts a line's quantity by delta.
func (s *service) UpdateItem(ctx context.Context, sessionID, productID string, delta int) (DTO, error) {
	if strings.TrimSpace(productID) == "" {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if delta == 0 {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "delta must be non-zero")
	}
	store, err := s.carts.CartOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	store.UpdateQuantity(productID, delta)
	return snapshot(store), nil
}

// RemoveItem drops the line for the product regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (DTO, error) {
	if strings.TrimSpace(productID) == "" {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	store, err := s.carts.CartOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	store.Remove(productID)
	return snapshot(store), nil
}

func validateOption(value string, options []string, field string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	for _, option := range options {
		if option == value {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, field+" is not offered for this product").
		WithDetails(map[string]any{"value": value, "options": options})
}

func snapshot(store *Store) DTO {
	return DTO{
		Items:    store.Lines(),
		Count:    store.Count(),
		Subtotal: store.Subtotal(),
	}
}
