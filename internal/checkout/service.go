package checkout

import (
	"context"
	"strings"

	"github.com/nashwabd/storefront-backend/internal/catalog"
	"github.com/nashwabd/storefront-backend/pkg/config"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

// ServiceParams groups dependencies for the checkout service. CardGateway is
// optional; without it card orders fall through to the default gateway.
type ServiceParams struct {
	Catalog     *catalog.Catalog
	Gateway     Gateway
	CardGateway Gateway
	Config      config.CheckoutConfig
	Logger      *logger.Logger
}

// Service exposes the direct checkout flow.
type Service interface {
	Quote(ctx context.Context, input QuoteInput) (Quote, error)
	Place(ctx context.Context, input PlaceInput) (OrderDTO, error)
}

type service struct {
	catalog     *catalog.Catalog
	gateway     Gateway
	cardGateway Gateway
	cfg         config.CheckoutConfig
	logger      *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gateway is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		catalog:     params.Catalog,
		gateway:     params.Gateway,
		cardGateway: params.CardGateway,
		cfg:         params.Config,
		logger:      params.Logger,
	}, nil
}

// Quote prices a prospective order without committing it.
func (s *service) Quote(ctx context.Context, input QuoteInput) (Quote, error) {
	return s.buildQuote(input.ProductID, input.Quantity)
}

// Place validates the submission, authorizes payment, and returns the receipt.
func (s *service) Place(ctx context.Context, input PlaceInput) (OrderDTO, error) {
	if err := validateCustomer(input.Customer); err != nil {
		return OrderDTO{}, err
	}
	if !validPaymentMethod(input.PaymentMethod) {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method").
			WithDetails(map[string]any{"payment_method": input.PaymentMethod})
	}

	quote, err := s.buildQuote(input.ProductID, input.Quantity)
	if err != nil {
		return OrderDTO{}, err
	}

	order := Order{
		Quote:         quote,
		PaymentMethod: input.PaymentMethod,
		Customer:      input.Customer,
		PaymentToken:  input.PaymentToken,
	}

	receipt, err := s.gatewayFor(order.PaymentMethod).Authorize(ctx, order)
	if err != nil {
		return OrderDTO{}, err
	}

	logCtx := s.logger.WithFields(ctx, map[string]any{
		"order_number":   receipt.OrderNumber,
		"reference":      receipt.Reference,
		"payment_method": order.PaymentMethod,
		"total":          order.Total,
	})
	s.logger.Info(logCtx, "order placed")

	return OrderDTO{Receipt: receipt, Quote: quote}, nil
}

func (s *service) buildQuote(productID string, quantity int) (Quote, error) {
	if strings.TrimSpace(productID) == "" {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity < 1 {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return Quote{}, err
	}

	subtotal := product.Price * quantity
	return Quote{
		Product:     product,
		Quantity:    quantity,
		Subtotal:    subtotal,
		DeliveryFee: s.cfg.DeliveryFee,
		Total:       subtotal + s.cfg.DeliveryFee,
		Currency:    s.cfg.Currency,
	}, nil
}

func (s *service) gatewayFor(paymentMethod string) Gateway {
	if paymentMethod == PaymentCard && s.cardGateway != nil {
		return s.cardGateway
	}
	return s.gateway
}

func validateCustomer(customer Customer) error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(customer.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(customer.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer details are incomplete").
			WithDetails(map[string]any{"missing": missing})
	}
	return nil
}

func validPaymentMethod(method string) bool {
	switch method {
	case PaymentCOD, PaymentMobile, PaymentCard:
		return true
	}
	return false
}
