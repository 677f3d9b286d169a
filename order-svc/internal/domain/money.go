package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how money and ratings are rounded at the display and
// persistence boundary. The zero value rounds half away from zero.
type RoundingMode int

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfEven
)

func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half_up":
		return RoundHalfUp, nil
	case "half_even", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundHalfUp, fmt.Errorf("unknown rounding mode %q", s)
	}
}

func (m RoundingMode) Round(d decimal.Decimal, places int32) decimal.Decimal {
	if m == RoundHalfEven {
		return d.RoundBank(places)
	}
	return d.Round(places)
}

// Cents rounds a money value to two places.
func (m RoundingMode) Cents(d decimal.Decimal) decimal.Decimal {
	return m.Round(d, 2)
}

// LineTotal is unitPrice * quantity, unrounded.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// AdjustQuantity applies delta to current with a floor of zero.
func AdjustQuantity(current, delta int) int {
	if next := current + delta; next > 0 {
		return next
	}
	return 0
}

// NormalizePrice rejects negative prices and caps precision at four places.
func NormalizePrice(p decimal.Decimal) (decimal.Decimal, error) {
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidPrice, p)
	}
	return p.Round(4), nil
}
