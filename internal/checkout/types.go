package checkout

import (
	"time"

	"github.com/nashwabd/storefront-backend/internal/catalog"
)

// Payment methods offered at checkout.
const (
	PaymentCOD    = "cod"
	PaymentMobile = "mobile"
	PaymentCard   = "card"
)

// Customer is the shipping contact collected at checkout.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// QuoteInput asks for a price breakdown before committing.
type QuoteInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// PlaceInput is the full order submission. PaymentToken carries the card
// source when paying by card.
type PlaceInput struct {
	ProductID     string   `json:"product_id" validate:"required"`
	Quantity      int      `json:"quantity" validate:"required,gte=1"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cod mobile card"`
	Customer      Customer `json:"customer" validate:"required"`
	PaymentToken  string   `json:"payment_token,omitempty"`
}

// Quote is the price breakdown for a prospective order. Amounts are integer
// BDT.
type Quote struct {
	Product     catalog.Product `json:"product"`
	Quantity    int             `json:"quantity"`
	Subtotal    int             `json:"subtotal"`
	DeliveryFee int             `json:"delivery_fee"`
	Total       int             `json:"total"`
	Currency    string          `json:"currency"`
}

// Order is a validated, priced submission handed to a payment gateway.
type Order struct {
	Quote
	PaymentMethod string
	Customer      Customer
	PaymentToken  string
}

// Receipt confirms a placed order. OrderNumber is the shopper-facing id;
// Reference uniquely identifies the order internally.
type Receipt struct {
	OrderNumber string    `json:"order_number"`
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`
}

// OrderDTO is the confirmation returned to clients.
type OrderDTO struct {
	Receipt Receipt `json:"receipt"`
	Quote   Quote   `json:"quote"`
}
