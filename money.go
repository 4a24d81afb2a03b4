package lifeassist

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an amount with a display currency. Stored amounts stay plain
// decimals; Money only exists to format totals for humans.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal amount and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's symbol and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }
