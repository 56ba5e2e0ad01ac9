package commands

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/application/use_cases"
	"github.com/mithaikart/storefront-service/internal/domain/coupon"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
	"github.com/mithaikart/storefront-service/internal/pkg/validation"
)

// ApplyCouponCommand pre-validates a coupon against the current cart so the
// storefront can show the discount before submission. Evaluation here and at
// submission time run the same pure function.
type ApplyCouponCommand struct {
	CartID string `json:"cart_id"`
	Code   string `json:"code"`
}

type ApplyCouponResponse struct {
	Code           string  `json:"code"`
	Discount       float64 `json:"discount"`
	Subtotal       float64 `json:"subtotal"`
	MinOrderAmount float64 `json:"min_order_amount,omitempty"`
}

type ApplyCouponHandler struct {
	checkout *use_cases.CheckoutUseCase
	log      *logger.Logger
}

func NewApplyCouponHandler(checkout *use_cases.CheckoutUseCase, log *logger.Logger) *ApplyCouponHandler {
	return &ApplyCouponHandler{
		checkout: checkout,
		log:      log,
	}
}

func (h *ApplyCouponHandler) Handle(ctx context.Context, cmd ApplyCouponCommand) (*ApplyCouponResponse, error) {
	fieldErrors := make(map[string]string)
	if validation.IsBlank(cmd.CartID) {
		fieldErrors["cart_id"] = "cart_id is required"
	}
	if validation.IsBlank(cmd.Code) {
		fieldErrors["code"] = "coupon code is required"
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	subtotal, err := h.checkout.Subtotal(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	result := coupon.Evaluate(cmd.Code, subtotal, h.checkout.Coupons())
	if !result.Applied() {
		h.log.Info("Coupon rejected",
			"cart_id", cmd.CartID,
			"code", coupon.Canonicalize(cmd.Code),
			"subtotal", subtotal,
			"reason", result.Rejection.Err.Error(),
		)
		return nil, result.Rejection.Reason()
	}

	return &ApplyCouponResponse{
		Code:           result.Coupon.Code,
		Discount:       result.Discount,
		Subtotal:       subtotal,
		MinOrderAmount: result.Coupon.MinOrderAmount,
	}, nil
}
