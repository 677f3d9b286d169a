package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine is a cart entry keyed by food item id. It carries a snapshot of the
// item fields the client needs to render the line.
type CartLine struct {
	FoodItemID          int             `json:"food_item_id"`
	RestaurantID        int             `json:"restaurant_id"`
	Name                string          `json:"name"`
	ImageURL            string          `json:"image_url"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

func (l CartLine) Total() decimal.Decimal {
	return LineTotal(l.UnitPrice, l.Quantity)
}

// Cart is the client-owned selection of food items pending checkout. Lines keep
// the order in which they were first added. A line never holds a quantity
// below one.
type Cart struct {
	lines []CartLine
	index map[int]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[int]int)}
}

// AddOrAdjust adds delta to the line for item, creating it when absent. A nil
// instructions pointer leaves the existing instructions unchanged.
func (c *Cart) AddOrAdjust(item FoodItem, delta int, instructions *string) {
	if c.index == nil {
		c.index = make(map[int]int)
	}

	pos, ok := c.index[item.ID]
	if !ok {
		qty := AdjustQuantity(0, delta)
		if qty == 0 {
			return
		}
		line := CartLine{
			FoodItemID:   item.ID,
			RestaurantID: item.RestaurantID,
			Name:         item.Name,
			ImageURL:     item.ImageURL,
			UnitPrice:    item.Price,
			Quantity:     qty,
		}
		if instructions != nil {
			line.SpecialInstructions = *instructions
		}
		c.index[item.ID] = len(c.lines)
		c.lines = append(c.lines, line)
		return
	}

	line := &c.lines[pos]
	line.Quantity = AdjustQuantity(line.Quantity, delta)
	if line.Quantity == 0 {
		c.Remove(item.ID)
		return
	}
	line.Name = item.Name
	line.ImageURL = item.ImageURL
	line.UnitPrice = item.Price
	if instructions != nil {
		line.SpecialInstructions = *instructions
	}
}

// Remove drops the line for foodItemID. Removing an absent line is a no-op.
func (c *Cart) Remove(foodItemID int) {
	pos, ok := c.index[foodItemID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
	delete(c.index, foodItemID)
	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].FoodItemID] = i
	}
}

func (c *Cart) QuantityOf(foodItemID int) int {
	if pos, ok := c.index[foodItemID]; ok {
		return c.lines[pos].Quantity
	}
	return 0
}

func (c *Cart) TotalItemCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums unrounded line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
