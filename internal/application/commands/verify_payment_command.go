package commands

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// VerifyPaymentCommand confirms a hosted-widget payment against the gateway
// signature and promotes the order to confirmed.
type VerifyPaymentCommand struct {
	PaymentOrderID string `json:"razorpay_order_id"`
	PaymentID      string `json:"razorpay_payment_id"`
	Signature      string `json:"razorpay_signature"`
}

type VerifyPaymentResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	State       SubmissionState `json:"state"`
}

type VerifyPaymentHandler struct {
	orderRepo ports.OrderRepository
	cartStore ports.CartStore
	gateway   ports.PaymentGateway
	notifier  ports.Notifier
	log       *logger.Logger
}

func NewVerifyPaymentHandler(
	orderRepo ports.OrderRepository,
	cartStore ports.CartStore,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	log *logger.Logger,
) *VerifyPaymentHandler {
	return &VerifyPaymentHandler{
		orderRepo: orderRepo,
		cartStore: cartStore,
		gateway:   gateway,
		notifier:  notifier,
		log:       log,
	}
}

func (h *VerifyPaymentHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (*VerifyPaymentResponse, error) {
	fieldErrors := make(map[string]string)
	if cmd.PaymentOrderID == "" {
		fieldErrors["razorpay_order_id"] = "razorpay_order_id is required"
	}
	if cmd.PaymentID == "" {
		fieldErrors["razorpay_payment_id"] = "razorpay_payment_id is required"
	}
	if cmd.Signature == "" {
		fieldErrors["razorpay_signature"] = "razorpay_signature is required"
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	o, err := h.orderRepo.GetOrderByPaymentOrderID(ctx, cmd.PaymentOrderID)
	if err != nil {
		return nil, err
	}

	// Re-verifying an already confirmed payment is a no-op success; the
	// widget may call back more than once.
	if o.IsPaid() {
		return &VerifyPaymentResponse{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			State:       StateSuccess,
		}, nil
	}

	if err := h.gateway.VerifyPayment(ports.PaymentConfirmation{
		PaymentOrderID: cmd.PaymentOrderID,
		PaymentID:      cmd.PaymentID,
		Signature:      cmd.Signature,
	}); err != nil {
		h.log.Warn("Payment verification failed",
			"order_id", o.ID,
			"payment_order_id", cmd.PaymentOrderID,
			"payment_id", cmd.PaymentID,
		)
		return nil, domainErrors.ErrPaymentNotVerified
	}

	if err := h.orderRepo.MarkOrderPaid(ctx, o.ID, cmd.PaymentID); err != nil {
		h.log.Error("Failed to mark order paid", "order_id", o.ID, "error", err)
		return nil, err
	}

	if err := h.cartStore.Clear(ctx, o.CartID); err != nil {
		h.log.Error("Failed to clear cart after payment", "cart_id", o.CartID, "order_id", o.ID, "error", err)
	}

	go h.sendConfirmation(o, cmd.PaymentID)

	h.log.Info("Payment verified",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"payment_id", cmd.PaymentID,
	)

	return &VerifyPaymentResponse{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		State:       StateSuccess,
	}, nil
}

func (h *VerifyPaymentHandler) sendConfirmation(o *order.Order, paymentID string) {
	if h.notifier == nil {
		return
	}

	o.PaymentID = paymentID
	o.Status = order.StatusConfirmed
	if err := h.notifier.SendOrderConfirmation(context.Background(), o); err != nil {
		h.log.Warn("Order confirmation email failed", "order_id", o.ID, "error", err)
	}
}
