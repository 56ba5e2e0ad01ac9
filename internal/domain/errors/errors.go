package errors

import (
	"errors"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")

	ErrCartEmpty    = errors.New("cart is empty")
	ErrCartNotFound = errors.New("cart not found")

	ErrInvalidCouponCode  = errors.New("invalid coupon code")
	ErrCouponBelowMinimum = errors.New("order subtotal is below coupon minimum")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyPaid   = errors.New("order has already been paid")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrValidationFailed   = errors.New("order validation failed")

	ErrPaymentNotVerified   = errors.New("payment signature verification failed")
	ErrPaymentGatewayFailed = errors.New("payment gateway request failed")

	ErrUnauthorized = errors.New("unauthorized")

	ErrTransactionFailed = errors.New("transaction failed")
)
