package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity parses a quantity typed into a form field. Whole numbers are
// taken as is, fractional numbers are rounded down ("2.7" is 2), and anything
// that is not a number is rejected with ErrInvalidQuantity. Values below 1 are
// returned unchanged; callers treat them as a removal.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("quantity[%s]: %w", raw, ErrInvalidQuantity)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("quantity[%s]: %w", raw, ErrInvalidQuantity)
	}

	floored := d.Floor()
	if floored.GreaterThan(maxQuantity) || floored.LessThan(maxQuantity.Neg()) {
		return 0, fmt.Errorf("quantity[%s] is out of range: %w", raw, ErrInvalidQuantity)
	}

	return int(floored.IntPart()), nil
}

var maxQuantity = decimal.NewFromInt(1_000_000)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
