package domain

import "errors"

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrBelowMinimumOrder      = errors.New("order is below the restaurant minimum")
	ErrRestaurantClosed       = errors.New("restaurant is closed")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrTerminalState          = errors.New("order is in a terminal status")
	ErrInvalidRating          = errors.New("rating must be between 1.0 and 5.0")
	ErrOrderNotFound          = errors.New("order not found")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrStorageUnavailable     = errors.New("storage unavailable")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrOrderNotDelivered  = errors.New("only delivered orders can be rated")
	ErrDuplicateRating    = errors.New("order has already been rated")
)
