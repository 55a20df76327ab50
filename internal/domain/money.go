package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// USD is the only currency the storefront prices in.
func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency.USD}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.unit(other)}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// Rounded returns the amount rounded half away from zero to two places.
// Rounding is a presentation concern; intermediate sums stay exact.
func (m Money) Rounded() decimal.Decimal {
	return m.Amount.Round(2)
}

func (m Money) String() string {
	if m.Currency == currency.USD {
		return "$" + m.Amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}

// unit keeps the currency of whichever operand is set; the zero Money has no currency.
func (m Money) unit(other Money) currency.Unit {
	if m.Currency == (currency.Unit{}) {
		return other.Currency
	}
	return m.Currency
}
