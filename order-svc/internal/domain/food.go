package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DietaryFlags struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	Spicy      bool `json:"spicy"`
}

// FoodItem is catalog reference data owned by restaurant management.
type FoodItem struct {
	ID              int              `json:"id"`
	RestaurantID    int              `json:"restaurant_id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	ImageURL        string           `json:"image_url"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	Dietary         DietaryFlags     `json:"dietary"`
	PreparationTime int              `json:"preparation_time"`
	Rating          decimal.Decimal  `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (f FoodItem) Validate() error {
	if _, err := NormalizePrice(f.Price); err != nil {
		return fmt.Errorf("food item %d: %w", f.ID, err)
	}
	if f.PreparationTime <= 0 {
		return fmt.Errorf("food item %d: preparation time must be positive", f.ID)
	}
	return nil
}

// HasDiscount reports whether a strikethrough original price should be shown.
func (f FoodItem) HasDiscount() bool {
	return f.OriginalPrice != nil && f.OriginalPrice.GreaterThan(f.Price)
}
