package commands

import (
	"context"

	"github.com/mithaikart/storefront-service/internal/application/ports"
	"github.com/mithaikart/storefront-service/internal/application/use_cases"
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/clock"
	"github.com/mithaikart/storefront-service/internal/pkg/generator"
	"github.com/mithaikart/storefront-service/internal/pkg/logger"
)

// PlaceOrderCommand submits a cash-on-delivery order.
type PlaceOrderCommand struct {
	CheckoutRequest
}

type PlaceOrderResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Total       float64         `json:"total"`
	State       SubmissionState `json:"state"`
}

type PlaceOrderHandler struct {
	checkout  *use_cases.CheckoutUseCase
	orderRepo ports.OrderRepository
	cartStore ports.CartStore
	notifier  ports.Notifier
	gen       *generator.OrderNumberGenerator
	clk       clock.Clock
	log       *logger.Logger
}

func NewPlaceOrderHandler(
	checkout *use_cases.CheckoutUseCase,
	orderRepo ports.OrderRepository,
	cartStore ports.CartStore,
	notifier ports.Notifier,
	gen *generator.OrderNumberGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *PlaceOrderHandler {
	return &PlaceOrderHandler{
		checkout:  checkout,
		orderRepo: orderRepo,
		cartStore: cartStore,
		notifier:  notifier,
		gen:       gen,
		clk:       clk,
		log:       log,
	}
}

func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*PlaceOrderResponse, error) {
	// Idle -> Validating
	if fieldErrors := cmd.Validate(); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	// Validating -> Submitting: re-derive the draft, never trust the client.
	draft, err := h.checkout.BuildDraft(ctx, cmd.CartID, cmd.CouponCode, cmd.Requirements)
	if err != nil {
		return nil, err
	}

	o := draft.ToOrder(
		h.gen.GenerateOrderID(),
		h.gen.GenerateOrderNumber(h.clk.Now()),
		cmd.CartID,
		cmd.Address,
		cmd.Requirements,
		cmd.DeliveryInstructions,
		order.PaymentCOD,
	)

	if err := h.orderRepo.CreateOrder(ctx, o); err != nil {
		h.log.Error("Failed to create order", "cart_id", cmd.CartID, "error", err)
		return nil, err
	}

	// Submitting -> Success: the order record exists, the cart can go.
	if err := h.cartStore.Clear(ctx, cmd.CartID); err != nil {
		h.log.Error("Failed to clear cart after order", "cart_id", cmd.CartID, "order_id", o.ID, "error", err)
	}

	go h.sendConfirmation(o)

	h.log.Info("Order placed",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"total", o.Total,
		"payment_method", string(o.PaymentMethod),
	)

	return &PlaceOrderResponse{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Total:       o.Total,
		State:       StateSuccess,
	}, nil
}

func (h *PlaceOrderHandler) sendConfirmation(o *order.Order) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.SendOrderConfirmation(context.Background(), o); err != nil {
		h.log.Warn("Order confirmation email failed", "order_id", o.ID, "error", err)
	}
}
