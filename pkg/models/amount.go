package models

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor currency units, e.g. cents.
type Amount int64

// defaultFraction is the number of minor unit digits assumed
// for currencies go-money does not know.
const defaultFraction = 2

func fraction(currency string) int32 {
	if c := money.GetCurrency(currency); c != nil {
		return int32(c.Fraction)
	}
	return defaultFraction
}

// ParseAmount parses a decimal amount in major units, e.g. "1800.50",
// into minor units of the currency.
//
// Values with more decimal places than the currency has minor unit
// digits are rejected.
func ParseAmount(s, currency string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}

	minor := d.Shift(fraction(currency))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more decimal places than %s supports", ErrInvalidAmount, s, currency)
	}

	if minor.GreaterThan(maxAmount) || minor.LessThan(minAmount) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, s)
	}

	return Amount(minor.IntPart()), nil
}

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Add returns the sum of a and b.
//
// If the sum does not fit into an Amount, the error wraps ErrInvalidAmount.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d is out of range", ErrInvalidAmount, a, b)
	}
	return sum, nil
}

// Money returns the amount as money in the given currency for display.
func (a Amount) Money(currency string) *money.Money {
	return money.New(int64(a), currency)
}
