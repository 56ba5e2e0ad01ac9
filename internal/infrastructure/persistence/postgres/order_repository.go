package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(conn *Connection) *OrderRepository {
	return &OrderRepository{
		db: conn.GetDB(),
	}
}

const orderColumns = `
	id, order_number, cart_id, items, address, requirements,
	delivery_instructions, coupon_code, subtotal, delivery_fee,
	surcharge_total, discount, total, payment_method, payment_order_id,
	payment_id, status, created_at, updated_at
`

func (r *OrderRepository) CreateOrder(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}
	requirements, err := json.Marshal(o.Requirements)
	if err != nil {
		return err
	}

	_, err = monitoring.InstrumentExec(ctx, r.db, "INSERT", "orders", query,
		o.ID, o.OrderNumber, o.CartID, items, address, requirements,
		o.DeliveryInstructions, o.CouponCode, o.Subtotal, o.DeliveryFee,
		o.SurchargeTotal, o.Discount, o.Total, string(o.PaymentMethod),
		o.PaymentOrderID, o.PaymentID, string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "orders", query, id)
	return scanOrder(row)
}

func (r *OrderRepository) GetOrderByPaymentOrderID(ctx context.Context, paymentOrderID string) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_order_id = $1`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "orders", query, paymentOrderID)
	return scanOrder(row)
}

func (r *OrderRepository) ListOrders(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "orders", query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status order.Status) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "orders", query, id, string(status))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrOrderNotFound
	}

	return nil
}

// MarkOrderPaid records the gateway payment ID and confirms the order in one
// statement, guarded against double confirmation.
func (r *OrderRepository) MarkOrderPaid(ctx context.Context, id, paymentID string) error {
	query := `
		UPDATE orders
		SET payment_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND (payment_id = '' OR payment_id IS NULL)
	`

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "orders", query,
		id, paymentID, string(order.StatusConfirmed),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrOrderAlreadyPaid
	}

	return nil
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var items, address, requirements []byte
	var paymentMethod, status string
	var paymentOrderID, paymentID sql.NullString

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CartID, &items, &address, &requirements,
		&o.DeliveryInstructions, &o.CouponCode, &o.Subtotal, &o.DeliveryFee,
		&o.SurchargeTotal, &o.Discount, &o.Total, &paymentMethod,
		&paymentOrderID, &paymentID, &status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(requirements, &o.Requirements); err != nil {
		return nil, err
	}

	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.Status = order.Status(status)
	o.PaymentOrderID = paymentOrderID.String
	o.PaymentID = paymentID.String

	return &o, nil
}
