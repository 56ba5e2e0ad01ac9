package ports

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/domain/order"
)

// Notifier delivers customer-facing notifications. Failures are logged, not
// surfaced; notification is never part of the checkout transaction.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}
