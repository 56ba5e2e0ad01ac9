package ports

import (
	"context"
)

// PaymentOrder is the gateway-side order backing a hosted payment widget.
// Amount is in the gateway's smallest currency unit (paise for INR).
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// PaymentConfirmation carries the fields the hosted widget hands back after
// the customer completes payment.
type PaymentConfirmation struct {
	PaymentOrderID string
	PaymentID      string
	Signature      string
}

type PaymentGateway interface {
	CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (*PaymentOrder, error)
	VerifyPayment(confirmation PaymentConfirmation) error
}
