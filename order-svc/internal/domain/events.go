package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventNewRating          = "new_rating"
)

type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      int             `json:"order_id"`
	UserID       int             `json:"user_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       Status          `json:"status"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Timestamp    time.Time       `json:"timestamp"`
}

type RatingEvent struct {
	Type         string          `json:"type"`
	OrderID      int             `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Rating       decimal.Decimal `json:"rating"`
	Timestamp    time.Time       `json:"timestamp"`
}
