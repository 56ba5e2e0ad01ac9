package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mithaikart/storefront-service/internal/application/commands"
	"github.com/mithaikart/storefront-service/internal/infrastructure/http/response"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

type CouponHandler struct {
	applyCoupon *commands.ApplyCouponHandler
	log         *logger.Logger
}

func NewCouponHandler(applyCoupon *commands.ApplyCouponHandler, log *logger.Logger) *CouponHandler {
	return &CouponHandler{
		applyCoupon: applyCoupon,
		log:         log,
	}
}

// HandleApplyCoupon serves POST /api/coupon/apply. It only previews the
// discount; the coupon is re-evaluated at submission time.
func (h *CouponHandler) HandleApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var cmd commands.ApplyCouponCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
			return
		}

		resp, err := h.applyCoupon.Handle(r.Context(), cmd)
		if err != nil {
			var validationErr *commands.ValidationError
			if errors.As(err, &validationErr) {
				response.WriteValidationError(w, "Validation failed", validationErr.Fields)
				return
			}

			monitoring.RecordCouponApplication("rejected")
			response.WriteDomainError(w, err)
			return
		}

		monitoring.RecordCouponApplication("applied")
		response.WriteSuccess(w, resp, "Coupon applied")
	}
}
