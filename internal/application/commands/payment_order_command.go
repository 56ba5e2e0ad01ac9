package commands

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/application/use_cases"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/clock"
	"github.com/mithaikart/storefront-service/internal/pkg/generator"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// CreatePaymentOrderCommand starts the online-payment path: the order is
// persisted as payment_pending and a gateway order is created for the hosted
// widget. The cart survives until payment is verified.
type CreatePaymentOrderCommand struct {
	CheckoutRequest
}

type CreatePaymentOrderResponse struct {
	OrderID      string              `json:"order_id"`
	OrderNumber  string              `json:"order_number"`
	Total        float64             `json:"total"`
	PaymentOrder *ports.PaymentOrder `json:"order"`
	State        SubmissionState     `json:"state"`
}

type CreatePaymentOrderHandler struct {
	checkout  *use_cases.CheckoutUseCase
	orderRepo ports.OrderRepository
	gateway   ports.PaymentGateway
	gen       *generator.OrderNumberGenerator
	clk       clock.Clock
	log       *logger.Logger
}

func NewCreatePaymentOrderHandler(
	checkout *use_cases.CheckoutUseCase,
	orderRepo ports.OrderRepository,
	gateway ports.PaymentGateway,
	gen *generator.OrderNumberGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *CreatePaymentOrderHandler {
	return &CreatePaymentOrderHandler{
		checkout:  checkout,
		orderRepo: orderRepo,
		gateway:   gateway,
		gen:       gen,
		clk:       clk,
		log:       log,
	}
}

func (h *CreatePaymentOrderHandler) Handle(ctx context.Context, cmd CreatePaymentOrderCommand) (*CreatePaymentOrderResponse, error) {
	// Idle -> Validating
	if fieldErrors := cmd.Validate(); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	// Validating -> Submitting
	draft, err := h.checkout.BuildDraft(ctx, cmd.CartID, cmd.CouponCode, cmd.Requirements)
	if err != nil {
		return nil, err
	}

	paymentOrder, err := h.gateway.CreatePaymentOrder(ctx, draft.Total, h.gen.GenerateReceipt())
	if err != nil {
		h.log.Error("Payment gateway order creation failed", "cart_id", cmd.CartID, "error", err)
		return nil, domainErrors.ErrPaymentGatewayFailed
	}

	o := draft.ToOrder(
		h.gen.GenerateOrderID(),
		h.gen.GenerateOrderNumber(h.clk.Now()),
		cmd.CartID,
		cmd.Address,
		cmd.Requirements,
		cmd.DeliveryInstructions,
		order.PaymentRazorpay,
	)
	o.PaymentOrderID = paymentOrder.ID

	if err := h.orderRepo.CreateOrder(ctx, o); err != nil {
		h.log.Error("Failed to create payment-pending order", "cart_id", cmd.CartID, "payment_order_id", paymentOrder.ID, "error", err)
		return nil, err
	}

	h.log.Info("Payment order created",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"payment_order_id", paymentOrder.ID,
		"total", o.Total,
	)

	return &CreatePaymentOrderResponse{
		OrderID:      o.ID,
		OrderNumber:  o.OrderNumber,
		Total:        o.Total,
		PaymentOrder: paymentOrder,
		State:        StateSubmitting,
	}, nil
}
