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

type OrderHandler struct {
	placeOrder    *commands.PlaceOrderHandler
	paymentOrder  *commands.CreatePaymentOrderHandler
	verifyPayment *commands.VerifyPaymentHandler
	log           *logger.Logger
}

func NewOrderHandler(
	placeOrder *commands.PlaceOrderHandler,
	paymentOrder *commands.CreatePaymentOrderHandler,
	verifyPayment *commands.VerifyPaymentHandler,
	log *logger.Logger,
) *OrderHandler {
	return &OrderHandler{
		placeOrder:    placeOrder,
		paymentOrder:  paymentOrder,
		verifyPayment: verifyPayment,
		log:           log,
	}
}

// HandlePlaceOrder serves POST /api/order/place (cash on delivery).
func (h *OrderHandler) HandlePlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var cmd commands.PlaceOrderCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
			return
		}

		h.log.Info("Place order request received",
			"cart_id", cmd.CartID,
			"coupon_code", cmd.CouponCode,
		)

		metrics := monitoring.NewOrderMetrics("cod")
		metrics.RecordAttempt()

		resp, err := h.placeOrder.Handle(r.Context(), cmd)
		if err != nil {
			h.writeCommandError(w, err, "Place order failed", "cart_id", cmd.CartID)
			metrics.RecordFailure(err.Error())
			return
		}

		metrics.RecordSuccess(resp.Total)
		response.WriteSuccess(w, resp, "Order placed successfully")
	}
}

// HandleCreatePaymentOrder serves POST /api/order/razorpay.
func (h *OrderHandler) HandleCreatePaymentOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var cmd commands.CreatePaymentOrderCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
			return
		}

		h.log.Info("Payment order request received",
			"cart_id", cmd.CartID,
			"coupon_code", cmd.CouponCode,
		)

		metrics := monitoring.NewOrderMetrics("razorpay")
		metrics.RecordAttempt()

		resp, err := h.paymentOrder.Handle(r.Context(), cmd)
		if err != nil {
			h.writeCommandError(w, err, "Payment order creation failed", "cart_id", cmd.CartID)
			metrics.RecordFailure(err.Error())
			return
		}

		response.WriteSuccess(w, resp, "Payment order created")
	}
}

// HandleVerifyPayment serves POST /api/order/verifyRazorpay.
func (h *OrderHandler) HandleVerifyPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var cmd commands.VerifyPaymentCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid request body", err.Error())
			return
		}

		h.log.Info("Payment verification request received",
			"payment_order_id", cmd.PaymentOrderID,
			"payment_id", cmd.PaymentID,
		)

		resp, err := h.verifyPayment.Handle(r.Context(), cmd)
		if err != nil {
			monitoring.RecordPaymentVerification("failure")
			h.writeCommandError(w, err, "Payment verification failed", "payment_order_id", cmd.PaymentOrderID)
			return
		}

		monitoring.RecordPaymentVerification("success")
		response.WriteSuccess(w, resp, "Payment verified")
	}
}

func (h *OrderHandler) writeCommandError(w http.ResponseWriter, err error, msg string, fields ...interface{}) {
	var validationErr *commands.ValidationError
	if errors.As(err, &validationErr) {
		h.log.Warn(msg, append(fields, "errors", validationErr.Fields)...)
		response.WriteValidationError(w, "Validation failed", validationErr.Fields)
		return
	}

	h.log.Error(msg, append(fields, "error", err.Error())...)
	response.WriteDomainError(w, err)
}
