package order

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusPaymentPending Status = "payment_pending"
	StatusConfirmed      Status = "confirmed"
	StatusShipped        Status = "shipped"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaymentPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "cod"
	PaymentRazorpay PaymentMethod = "razorpay"
)

type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type Address struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pin_code"`
}

// SpecialRequirements is the fixed set of handling flags a customer can
// request, each optionally carrying a flat surcharge at pricing time.
type SpecialRequirements struct {
	ColdPacking       bool `json:"cold_packing"`
	GiftWrap          bool `json:"gift_wrap"`
	FragileHandling   bool `json:"fragile_handling"`
	NoContactDelivery bool `json:"no_contact_delivery"`
}

type Order struct {
	ID                   string
	OrderNumber          string
	CartID               string
	Items                []LineItem
	Address              Address
	Requirements         SpecialRequirements
	DeliveryInstructions string
	CouponCode           string
	Subtotal             float64
	DeliveryFee          float64
	SurchargeTotal       float64
	Discount             float64
	Total                float64
	PaymentMethod        PaymentMethod
	PaymentOrderID       string
	PaymentID            string
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (o *Order) IsPaid() bool {
	return o.PaymentMethod == PaymentRazorpay && o.PaymentID != ""
}

func (o *Order) MarkPaid(paymentID string) error {
	if o.PaymentMethod != PaymentRazorpay {
		return errors.New("only online-payment orders can be marked paid")
	}

	o.PaymentID = paymentID
	o.Status = StatusConfirmed
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (o *Order) Cancel() {
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now().UTC()
}
