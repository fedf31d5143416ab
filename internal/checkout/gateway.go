package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nashwabd/storefront-backend/pkg/config"
	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// Gateway authorizes payment for an order and returns the receipt.
type Gateway interface {
	Authorize(ctx context.Context, order Order) (Receipt, error)
}

// simulatedGateway approves every order after a fixed processing delay. It
// backs cash-on-delivery and mobile wallets, which settle outside the
// storefront.
type simulatedGateway struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulatedGateway builds the always-approve gateway with the configured
// processing delay.
func NewSimulatedGateway(cfg config.CheckoutConfig) Gateway {
	return &simulatedGateway{
		delay: cfg.ProcessingDelay,
		now:   time.Now,
	}
}

func (g *simulatedGateway) Authorize(ctx context.Context, order Order) (Receipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "order processing interrupted")
		case <-timer.C:
		}
	}

	return Receipt{
		OrderNumber: NewOrderNumber(),
		Reference:   uuid.NewString(),
		Status:      "confirmed",
		PlacedAt:    g.now(),
	}, nil
}

// NewOrderNumber mints the shopper-facing order id.
func NewOrderNumber() string {
	return fmt.Sprintf("NSH-%d", 100000+rand.Intn(900000))
}
