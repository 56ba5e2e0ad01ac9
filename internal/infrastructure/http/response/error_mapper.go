package response

import (
	"errors"
	"net/http"

	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
)

type ErrorMapping struct {
	HTTPStatus int
	Status     Status
	Message    string
}

var errorMappings = map[error]ErrorMapping{
	domainErrors.ErrProductNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Product not found",
	},
	domainErrors.ErrProductUnavailable: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Product is not available",
	},
	domainErrors.ErrCartEmpty: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Cart is empty",
	},
	domainErrors.ErrCartNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Cart not found",
	},
	domainErrors.ErrInvalidCouponCode: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Invalid coupon code",
	},
	domainErrors.ErrCouponBelowMinimum: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Order subtotal is below the coupon minimum",
	},
	domainErrors.ErrOrderNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Order not found",
	},
	domainErrors.ErrOrderAlreadyPaid: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Order has already been paid",
	},
	domainErrors.ErrInvalidOrderStatus: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Invalid order status",
	},
	domainErrors.ErrPaymentNotVerified: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Payment could not be verified",
	},
	domainErrors.ErrPaymentGatewayFailed: {
		HTTPStatus: http.StatusBadGateway,
		Status:     StatusServiceUnavailable,
		Message:    "Payment gateway request failed",
	},
	domainErrors.ErrUnauthorized: {
		HTTPStatus: http.StatusUnauthorized,
		Status:     StatusUnauthorized,
		Message:    "Unauthorized",
	},
	domainErrors.ErrTransactionFailed: {
		HTTPStatus: http.StatusInternalServerError,
		Status:     StatusInternalError,
		Message:    "Transaction failed",
	},
}

func MapDomainError(err error) (int, *ErrorResponse) {
	for domainErr, mapping := range errorMappings {
		if errors.Is(err, domainErr) {
			return mapping.HTTPStatus, Error(mapping.Status, mapping.Message, err.Error())
		}
	}

	return http.StatusInternalServerError, Error(StatusInternalError, "Internal server error", err.Error())
}

func WriteDomainError(w http.ResponseWriter, err error) {
	statusCode, errorResponse := MapDomainError(err)
	WriteJSON(w, statusCode, errorResponse)
}
