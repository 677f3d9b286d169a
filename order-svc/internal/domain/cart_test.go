package domain_test

import (
	"testing"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id int, price string) domain.FoodItem {
	return domain.FoodItem{
		ID:              id,
		RestaurantID:    7,
		Name:            "item",
		Price:           decimal.RequireFromString(price),
		PreparationTime: 10,
	}
}

func strPtr(s string) *string { return &s }

func TestCart_AddOrAdjust(t *testing.T) {
	tests := []struct {
		name         string
		steps        []int
		expectedQty  int
		expectedLine bool
	}{
		{name: "new line", steps: []int{2}, expectedQty: 2, expectedLine: true},
		{name: "new line with non-positive delta", steps: []int{-3}, expectedQty: 0, expectedLine: false},
		{name: "increment", steps: []int{1, 1, 1}, expectedQty: 3, expectedLine: true},
		{name: "decrement to zero removes", steps: []int{2, -2}, expectedQty: 0, expectedLine: false},
		{name: "decrement below zero clamps", steps: []int{1, -5}, expectedQty: 0, expectedLine: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := domain.NewCart()
			for _, delta := range testCase.steps {
				cart.AddOrAdjust(item(1, "4.50"), delta, nil)
			}
			assert.Equal(t, testCase.expectedQty, cart.QuantityOf(1))
			assert.Equal(t, testCase.expectedLine, !cart.IsEmpty())
			for _, line := range cart.Lines() {
				assert.Greater(t, line.Quantity, 0)
			}
		})
	}
}

func TestCart_Instructions(t *testing.T) {
	cart := domain.NewCart()
	cart.AddOrAdjust(item(1, "3.00"), 1, strPtr("no onions"))
	cart.AddOrAdjust(item(1, "3.00"), 1, nil)
	assert.Equal(t, "no onions", cart.Lines()[0].SpecialInstructions)

	cart.AddOrAdjust(item(1, "3.00"), 1, strPtr("extra sauce"))
	assert.Equal(t, "extra sauce", cart.Lines()[0].SpecialInstructions)
	assert.Equal(t, 3, cart.QuantityOf(1))
}

func TestCart_SubtotalMatchesLines(t *testing.T) {
	cart := domain.NewCart()
	cart.AddOrAdjust(item(1, "12.99"), 1, nil)
	cart.AddOrAdjust(item(2, "0.333"), 3, nil)
	cart.AddOrAdjust(item(3, "5.00"), 2, nil)
	cart.AddOrAdjust(item(3, "5.00"), -1, nil)

	expected := decimal.Zero
	for _, line := range cart.Lines() {
		expected = expected.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	assert.True(t, expected.Equal(cart.Subtotal()))
	assert.Equal(t, "18.989", cart.Subtotal().String())
	assert.Equal(t, 5, cart.TotalItemCount())
}

func TestCart_IncrementDecrementRoundTrip(t *testing.T) {
	cart := domain.NewCart()
	cart.AddOrAdjust(item(1, "2.00"), 2, strPtr("well done"))
	cart.AddOrAdjust(item(2, "3.00"), 1, nil)
	before := cart.Lines()

	cart.AddOrAdjust(item(1, "2.00"), 1, nil)
	cart.AddOrAdjust(item(1, "2.00"), -1, nil)
	assert.Equal(t, before, cart.Lines())

	cart.AddOrAdjust(item(9, "1.00"), 1, nil)
	cart.AddOrAdjust(item(9, "1.00"), -1, nil)
	assert.Equal(t, before, cart.Lines())
}

func TestCart_Remove(t *testing.T) {
	cart := domain.NewCart()
	cart.AddOrAdjust(item(1, "1.00"), 1, nil)
	cart.AddOrAdjust(item(2, "2.00"), 1, nil)
	cart.AddOrAdjust(item(3, "3.00"), 1, nil)

	cart.Remove(2)
	cart.Remove(2)
	cart.Remove(42)

	assert.Equal(t, 0, cart.QuantityOf(2))
	assert.Equal(t, 1, cart.QuantityOf(3))
	assert.Len(t, cart.Lines(), 2)

	cart.AddOrAdjust(item(3, "3.00"), 1, nil)
	assert.Equal(t, 2, cart.QuantityOf(3))
}

func TestCart_ZeroValueUsable(t *testing.T) {
	var cart domain.Cart
	assert.Equal(t, 0, cart.QuantityOf(1))
	cart.AddOrAdjust(item(1, "1.00"), 1, nil)
	assert.Equal(t, 1, cart.TotalItemCount())
}
