package order

import (
	"time"

	"github.com/mithaikart/storefront-service/internal/domain/cart"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/domain/coupon"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
)

// Draft is an order before submission. It is rebuilt fresh for every
// checkout attempt; client-supplied totals are never trusted.
type Draft struct {
	Items          []LineItem
	Subtotal       float64
	DeliveryFee    float64
	SurchargeTotal float64
	Coupon         *coupon.Coupon
	Discount       float64
	Total          float64
}

type Pricing struct {
	DeliveryFee float64
	Surcharges  Surcharges
}

// BuildDraft resolves cart entries against the product catalog and derives
// every monetary figure from scratch. Products missing from the lookup fail
// the draft: a stale cart must not silently price an order.
func BuildDraft(c *cart.Cart, products map[string]*catalog.Product, couponCode string, coupons []coupon.Coupon, req SpecialRequirements, pricing Pricing) (*Draft, error) {
	if c.IsEmpty() {
		return nil, domainErrors.ErrCartEmpty
	}

	entries := c.Entries()
	items := make([]LineItem, 0, len(entries))
	var subtotal float64

	for _, entry := range entries {
		product, ok := products[entry.ProductID]
		if !ok {
			return nil, domainErrors.ErrProductNotFound
		}
		if !product.Available {
			return nil, domainErrors.ErrProductUnavailable
		}

		lineTotal := product.Price * float64(entry.Quantity)
		items = append(items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  entry.Quantity,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
	}

	draft := &Draft{
		Items:          items,
		Subtotal:       subtotal,
		DeliveryFee:    pricing.DeliveryFee,
		SurchargeTotal: pricing.Surcharges.SurchargeTotal(req),
	}

	if couponCode != "" {
		result := coupon.Evaluate(couponCode, subtotal, coupons)
		if !result.Applied() {
			return nil, result.Rejection.Reason()
		}
		draft.Coupon = result.Coupon
		draft.Discount = result.Discount
	}

	draft.Total = ComputeTotal(subtotal, pricing.DeliveryFee, req, pricing.Surcharges, draft.Discount)

	return draft, nil
}

// ToOrder materializes the draft into a persistable order record.
func (d *Draft) ToOrder(id, orderNumber, cartID string, addr Address, req SpecialRequirements, instructions string, method PaymentMethod) *Order {
	status := StatusPending
	if method == PaymentRazorpay {
		status = StatusPaymentPending
	}

	couponCode := ""
	if d.Coupon != nil {
		couponCode = d.Coupon.Code
	}

	now := time.Now().UTC()
	return &Order{
		ID:                   id,
		OrderNumber:          orderNumber,
		CartID:               cartID,
		Items:                d.Items,
		Address:              addr,
		Requirements:         req,
		DeliveryInstructions: instructions,
		CouponCode:           couponCode,
		Subtotal:             d.Subtotal,
		DeliveryFee:          d.DeliveryFee,
		SurchargeTotal:       d.SurchargeTotal,
		Discount:             d.Discount,
		Total:                d.Total,
		PaymentMethod:        method,
		Status:               status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
