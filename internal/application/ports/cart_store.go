package ports

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/domain/cart"
)

// CartStore is the durable cart mapping, keyed by cart ID (one per
// storefront session). Implementations hydrate on read and mirror every
// mutation; a stored cart that cannot be parsed hydrates as empty.
type CartStore interface {
	Load(ctx context.Context, cartID string) (*cart.Cart, error)
	Get(ctx context.Context, cartID, productID string) (int, error)
	Set(ctx context.Context, cartID, productID string, quantity int) error
	Clear(ctx context.Context, cartID string) error
	IsEmpty(ctx context.Context, cartID string) (bool, error)
}
