package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultDeliveryWindow = 30 * time.Minute

// TaxPolicy computes tax on an unrounded subtotal.
type TaxPolicy interface {
	Tax(subtotal decimal.Decimal, jurisdiction string) decimal.Decimal
}

type TaxFunc func(subtotal decimal.Decimal, jurisdiction string) decimal.Decimal

func (f TaxFunc) Tax(subtotal decimal.Decimal, jurisdiction string) decimal.Decimal {
	return f(subtotal, jurisdiction)
}

// FlatRateTax applies Rate everywhere, or the per-jurisdiction override when
// one is configured.
type FlatRateTax struct {
	Rate      decimal.Decimal
	Overrides map[string]decimal.Decimal
}

func (t FlatRateTax) Tax(subtotal decimal.Decimal, jurisdiction string) decimal.Decimal {
	rate := t.Rate
	if r, ok := t.Overrides[jurisdiction]; ok {
		rate = r
	}
	return subtotal.Mul(rate)
}

type CheckoutDetails struct {
	UserID              int
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions *string
	Jurisdiction        string
}

// Checkout promotes carts to orders.
type Checkout struct {
	Tax           TaxPolicy
	DefaultWindow time.Duration
	Now           func() time.Time
}

func (c Checkout) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().UTC()
}

func (c Checkout) deliveryWindow(r Restaurant) time.Duration {
	if r.DeliveryTime > 0 {
		return r.DeliveryTime
	}
	if c.DefaultWindow > 0 {
		return c.DefaultWindow
	}
	return DefaultDeliveryWindow
}

// CreateFromCart snapshots the cart into a PENDING order for restaurant.
func (c Checkout) CreateFromCart(cart *Cart, restaurant Restaurant, details CheckoutDetails) (Order, error) {
	if cart == nil || cart.IsEmpty() {
		return Order{}, ErrEmptyCart
	}
	subtotal := cart.Subtotal()
	if subtotal.LessThan(restaurant.MinimumOrder) {
		return Order{}, fmt.Errorf("%w: subtotal %s, minimum %s",
			ErrBelowMinimumOrder, subtotal.StringFixed(2), restaurant.MinimumOrder.StringFixed(2))
	}
	if !restaurant.IsOpen {
		return Order{}, fmt.Errorf("%w: %s", ErrRestaurantClosed, restaurant.Name)
	}

	cartLines := cart.Lines()
	lines := make([]OrderLine, 0, len(cartLines))
	for _, cl := range cartLines {
		lines = append(lines, OrderLine{
			FoodItemID:          cl.FoodItemID,
			Name:                cl.Name,
			UnitPrice:           cl.UnitPrice,
			Quantity:            cl.Quantity,
			SpecialInstructions: cl.SpecialInstructions,
		})
	}

	tax := decimal.Zero
	if c.Tax != nil {
		tax = c.Tax.Tax(subtotal, details.Jurisdiction)
	}

	now := c.now()
	order := Order{
		UserID:                details.UserID,
		RestaurantID:          restaurant.ID,
		RestaurantName:        restaurant.Name,
		Lines:                 lines,
		Status:                StatusPending,
		DeliveryFee:           restaurant.DeliveryFee,
		Tax:                   tax,
		DeliveryAddress:       details.DeliveryAddress,
		PaymentMethod:         details.PaymentMethod,
		OrderDate:             now,
		EstimatedDeliveryTime: now.Add(c.deliveryWindow(restaurant)),
		UpdatedAt:             now,
	}
	if details.SpecialInstructions != nil {
		order.SpecialInstructions = *details.SpecialInstructions
	}
	order.recompute()
	return order, nil
}
