package coupon

import (
	"fmt"
	"strings"

	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// Coupon is a static discount definition. Codes are stored canonicalized
// (trimmed, upper case).
type Coupon struct {
	Code           string       `json:"code"`
	Type           DiscountType `json:"type"`
	Amount         float64      `json:"amount"`
	Rate           float64      `json:"rate"`
	MaxDiscount    float64      `json:"max_discount"`
	MinOrderAmount float64      `json:"min_order_amount"`
	Description    string       `json:"description"`
}

func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Rejection explains why a coupon could not be applied.
type Rejection struct {
	Err            error
	MinOrderAmount float64
}

// Reason wraps the sentinel error with the coupon's minimum when one was
// missed, so callers can still match with errors.Is.
func (r *Rejection) Reason() error {
	if r.MinOrderAmount > 0 {
		return fmt.Errorf("%w: minimum order amount is %.2f", r.Err, r.MinOrderAmount)
	}
	return r.Err
}

// Result carries either a computed discount or a rejection.
type Result struct {
	Coupon    *Coupon
	Discount  float64
	Rejection *Rejection
}

func (r Result) Applied() bool {
	return r.Rejection == nil
}

// Evaluate resolves a coupon code against the catalog and computes the
// discount for the given subtotal. Pure and idempotent.
//
// Percentage discounts are clamped to the coupon's MaxDiscount cap when one
// is set. Fixed discounts are intentionally NOT clamped against the subtotal;
// only the final order total is clamped at zero by the total calculator.
func Evaluate(code string, subtotal float64, catalog []Coupon) Result {
	canonical := Canonicalize(code)

	var matched *Coupon
	for i := range catalog {
		if Canonicalize(catalog[i].Code) == canonical {
			matched = &catalog[i]
			break
		}
	}

	if matched == nil {
		return Result{Rejection: &Rejection{Err: domainErrors.ErrInvalidCouponCode}}
	}

	if matched.MinOrderAmount > 0 && subtotal < matched.MinOrderAmount {
		return Result{
			Coupon: matched,
			Rejection: &Rejection{
				Err:            domainErrors.ErrCouponBelowMinimum,
				MinOrderAmount: matched.MinOrderAmount,
			},
		}
	}

	var discount float64
	switch matched.Type {
	case DiscountPercentage:
		discount = subtotal * matched.Rate
		if matched.MaxDiscount > 0 && discount > matched.MaxDiscount {
			discount = matched.MaxDiscount
		}
	default:
		discount = matched.Amount
	}

	return Result{Coupon: matched, Discount: discount}
}
