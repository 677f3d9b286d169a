package httpapi

import (
	"errors"
	"net/http"

	"overcooked-orders/order-svc/internal/domain"
	"overcooked-orders/order-svc/internal/service"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{domain.ErrEmptyCart, http.StatusUnprocessableEntity, "your cart is empty"},
	{domain.ErrBelowMinimumOrder, http.StatusUnprocessableEntity, "your order is below this restaurant's minimum"},
	{domain.ErrRestaurantClosed, http.StatusConflict, "this restaurant is not accepting orders right now"},
	{domain.ErrIllegalTransition, http.StatusConflict, "this order cannot be moved to that status"},
	{domain.ErrTerminalState, http.StatusConflict, "this order can no longer be changed"},
	{domain.ErrInvalidRating, http.StatusBadRequest, "ratings must be between 1 and 5"},
	{domain.ErrOrderNotFound, http.StatusNotFound, "we could not find that order"},
	{domain.ErrConcurrentModification, http.StatusConflict, "this order was just updated, please refresh and try again"},
	{domain.ErrStorageUnavailable, http.StatusServiceUnavailable, "we are having trouble reaching our kitchen, please try again shortly"},
	{domain.ErrRestaurantNotFound, http.StatusNotFound, "we could not find that restaurant"},
	{domain.ErrFoodItemNotFound, http.StatusUnprocessableEntity, "one of the items is no longer on the menu"},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, "item quantities must be at least 1"},
	{domain.ErrOrderNotDelivered, http.StatusConflict, "you can rate an order once it has been delivered"},
	{domain.ErrDuplicateRating, http.StatusConflict, "you have already rated this order"},
	{service.ErrNoTrackingCode, http.StatusNotFound, "this order has no tracking code"},
}

// describeError maps err to a status code and a message fit for customers.
func describeError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "something went wrong"
}
