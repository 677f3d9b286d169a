package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is the immutable copy of a cart line taken at checkout.
type OrderLine struct {
	FoodItemID          int             `json:"food_item_id"`
	Name                string          `json:"name"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type StatusChange struct {
	From Status    `json:"from"`
	To   Status    `json:"to"`
	At   time.Time `json:"at"`
}

// Order is a placed order. Values are replaced, never edited in place: every
// mutation returns a new Order with its totals recomputed.
type Order struct {
	ID                    int             `json:"id"`
	UserID                int             `json:"user_id"`
	RestaurantID          int             `json:"restaurant_id"`
	RestaurantName        string          `json:"restaurant_name"`
	Lines                 []OrderLine     `json:"lines"`
	Status                Status          `json:"status"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	Tax                   decimal.Decimal `json:"tax"`
	GrandTotal            decimal.Decimal `json:"grand_total"`
	DeliveryAddress       string          `json:"delivery_address"`
	PaymentMethod         string          `json:"payment_method"`
	OrderDate             time.Time       `json:"order_date"`
	EstimatedDeliveryTime time.Time       `json:"estimated_delivery_time"`
	TrackingID            string          `json:"tracking_id,omitempty"`
	SpecialInstructions   string          `json:"special_instructions,omitempty"`
	History               []StatusChange  `json:"history,omitempty"`
	Version               int             `json:"version"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func (o Order) clone() Order {
	o.Lines = slices.Clone(o.Lines)
	o.History = slices.Clone(o.History)
	return o
}

// recompute derives subtotal and grand total from the lines, fee and tax.
func (o *Order) recompute() {
	subtotal := decimal.Zero
	for i := range o.Lines {
		o.Lines[i].TotalPrice = LineTotal(o.Lines[i].UnitPrice, o.Lines[i].Quantity)
		subtotal = subtotal.Add(o.Lines[i].TotalPrice)
	}
	o.Subtotal = subtotal
	o.GrandTotal = subtotal.Add(o.DeliveryFee).Add(o.Tax)
}

func (o Order) ItemCount() int {
	n := 0
	for _, line := range o.Lines {
		n += line.Quantity
	}
	return n
}

// Rounded returns the order as it is displayed or persisted: every money
// value rounded to cents and the grand total rebuilt from the rounded parts.
func (o Order) Rounded(mode RoundingMode) Order {
	out := o.clone()
	subtotal := decimal.Zero
	for i := range out.Lines {
		out.Lines[i].TotalPrice = mode.Cents(out.Lines[i].TotalPrice)
		subtotal = subtotal.Add(LineTotal(out.Lines[i].UnitPrice, out.Lines[i].Quantity))
	}
	out.Subtotal = mode.Cents(subtotal)
	out.DeliveryFee = mode.Cents(out.DeliveryFee)
	out.Tax = mode.Cents(out.Tax)
	out.GrandTotal = out.Subtotal.Add(out.DeliveryFee).Add(out.Tax)
	return out
}

// Transition moves the order to target under the rules of m.
func (m StateMachine) Transition(o Order, target Status, at time.Time) (Order, error) {
	if err := m.Check(o.Status, target); err != nil {
		return o, err
	}
	next := o.clone()
	next.History = append(next.History, StatusChange{From: o.Status, To: target, At: at})
	next.Status = target
	next.UpdatedAt = at
	next.recompute()
	return next, nil
}

// Cancel is Transition to CANCELLED. Cancelling twice fails with
// ErrTerminalState.
func (m StateMachine) Cancel(o Order, at time.Time) (Order, error) {
	return m.Transition(o, StatusCancelled, at)
}

// Reorder builds a new cart from the order's lines priced from catalog, the
// current food items keyed by id. Lines whose item is no longer in the catalog
// are skipped and their ids returned.
func Reorder(o Order, catalog map[int]FoodItem) (*Cart, []int) {
	cart := NewCart()
	var missing []int
	for _, line := range o.Lines {
		item, ok := catalog[line.FoodItemID]
		if !ok {
			missing = append(missing, line.FoodItemID)
			continue
		}
		var instructions *string
		if line.SpecialInstructions != "" {
			s := line.SpecialInstructions
			instructions = &s
		}
		cart.AddOrAdjust(item, line.Quantity, instructions)
	}
	return cart, missing
}
