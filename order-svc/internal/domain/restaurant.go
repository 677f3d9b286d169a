package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MinRating = decimal.NewFromInt(1)
	MaxRating = decimal.NewFromInt(5)
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Restaurant struct {
	ID           int             `json:"id"`
	OwnerID      int             `json:"owner_id"`
	Name         string          `json:"name"`
	Rating       decimal.Decimal `json:"rating"`
	Reviews      int             `json:"reviews"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	MinimumOrder decimal.Decimal `json:"minimum_order"`
	IsOpen       bool            `json:"is_open"`
	Categories   []string        `json:"categories"`
	Coordinates  Coordinates     `json:"coordinates"`
	DeliveryTime time.Duration   `json:"delivery_time"`
	Version      int             `json:"version"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RatingAggregator folds a new rating into a restaurant's running average.
type RatingAggregator struct {
	Rounding RoundingMode
}

// Apply returns r with the new rating folded in and UpdatedAt set to at. The
// result is fully determined by its arguments.
func (a RatingAggregator) Apply(r Restaurant, newRating decimal.Decimal, at time.Time) (Restaurant, error) {
	if newRating.LessThan(MinRating) || newRating.GreaterThan(MaxRating) {
		return r, fmt.Errorf("%w: got %s", ErrInvalidRating, newRating)
	}
	reviews := decimal.NewFromInt(int64(r.Reviews))
	sum := r.Rating.Mul(reviews).Add(newRating)
	avg := sum.Div(reviews.Add(decimal.NewFromInt(1)))

	updated := r
	updated.Categories = append([]string(nil), r.Categories...)
	updated.Rating = a.Rounding.Round(avg, 1)
	updated.Reviews = r.Reviews + 1
	updated.UpdatedAt = at
	return updated, nil
}

// ApplyNewRating is RatingAggregator.Apply with half-up rounding.
func ApplyNewRating(r Restaurant, newRating decimal.Decimal, at time.Time) (Restaurant, error) {
	return RatingAggregator{}.Apply(r, newRating, at)
}
