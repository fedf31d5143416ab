package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/square"
)

// squareGateway charges cards through Square. The other payment methods never
// reach it.
type squareGateway struct {
	client *square.Client
	now    func() time.Time
}

// NewSquareGateway wraps a Square client as a payment gateway.
func NewSquareGateway(client *square.Client) (Gateway, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "square client is required")
	}
	return &squareGateway{
		client: client,
		now:    time.Now,
	}, nil
}

func (g *squareGateway) Authorize(ctx context.Context, order Order) (Receipt, error) {
	if order.PaymentToken == "" {
		return Receipt{}, pkgerrors.New(pkgerrors.CodeValidation, "payment token is required for card payments")
	}

	reference := uuid.NewString()
	payment, err := g.client.CreatePayment(ctx, square.PaymentCreateParams{
		AmountMinor: int64(order.Total),
		Currency:    order.Currency,
		LocationID:  g.client.LocationID(),
		SourceID:    order.PaymentToken,
		ReferenceID: reference,
		Note:        fmt.Sprintf("%s x%d", order.Product.Name, order.Quantity),
	})
	if err != nil {
		return Receipt{}, err
	}

	status := "confirmed"
	if s := payment.GetStatus(); s != nil {
		status = *s
	}
	return Receipt{
		OrderNumber: NewOrderNumber(),
		Reference:   reference,
		Status:      status,
		PlacedAt:    g.now(),
	}, nil
}
