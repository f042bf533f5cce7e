package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrOrderClosed   = errors.New("order is already closed")
)

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrUnknownStatus),
		errors.Is(err, ErrOrderClosed):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
