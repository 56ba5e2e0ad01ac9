package ports

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/domain/order"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	GetOrderByID(ctx context.Context, id string) (*order.Order, error)
	GetOrderByPaymentOrderID(ctx context.Context, paymentOrderID string) (*order.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status order.Status) error
	MarkOrderPaid(ctx context.Context, id, paymentID string) error
}
