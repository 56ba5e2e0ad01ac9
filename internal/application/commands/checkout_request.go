package commands

import (
	"github.com/mithaikart/storefront-service/internal/domain/order"
	"github.com/mithaikart/storefront-service/internal/pkg/validation"
)

// SubmissionState tracks a checkout attempt through its lifecycle. Every
// attempt starts at Idle, passes through Validating and Submitting, and ends
// at Success or Failed. A failed attempt returns to Idle so the customer can
// resubmit without losing form data.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateFailed     SubmissionState = "failed"
)

// CheckoutRequest is the order form as submitted by the storefront.
type CheckoutRequest struct {
	CartID               string                    `json:"cart_id"`
	Address              order.Address             `json:"address"`
	Requirements         order.SpecialRequirements `json:"special_requirements"`
	DeliveryInstructions string                    `json:"delivery_instructions"`
	CouponCode           string                    `json:"coupon_code"`
}

// Validate runs the synchronous field checks. A non-empty result means the
// attempt stops in the Validating state and nothing is persisted or sent to
// the payment gateway.
func (r CheckoutRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if validation.IsBlank(r.CartID) {
		errors["cart_id"] = "cart_id is required"
	}
	if validation.IsBlank(r.Address.FullName) {
		errors["full_name"] = "full name is required"
	}
	if validation.IsBlank(r.Address.Email) {
		errors["email"] = "email is required"
	} else if !validation.IsEmail(r.Address.Email) {
		errors["email"] = "email format is invalid"
	}
	if validation.IsBlank(r.Address.Phone) {
		errors["phone"] = "phone is required"
	} else if !validation.IsPhone(r.Address.Phone) {
		errors["phone"] = "phone must be a 10-digit number"
	}
	if validation.IsBlank(r.Address.Street) {
		errors["street"] = "street address is required"
	}
	if validation.IsBlank(r.Address.City) {
		errors["city"] = "city is required"
	}
	if validation.IsBlank(r.Address.State) {
		errors["state"] = "state is required"
	}
	if validation.IsBlank(r.Address.PinCode) {
		errors["pin_code"] = "pin code is required"
	} else if !validation.IsPinCode(r.Address.PinCode) {
		errors["pin_code"] = "pin code must be a 6-digit number"
	}

	return errors
}

// ValidationError carries field-level errors out of a command handler.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "order validation failed"
}
