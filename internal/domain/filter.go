package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange is a half-open bracket [Min, Max). A nil Max is the open-ended
// "and above" bracket.
type PriceRange struct {
	Min decimal.Decimal
	Max *decimal.Decimal
}

// ParsePriceRange parses the bracket tokens used by the shop filter:
// "20-30" for [20, 30) and "60+" for 60 and above.
func ParsePriceRange(s string) (PriceRange, error) {
	token := strings.TrimSpace(s)

	if lower, ok := strings.CutSuffix(token, "+"); ok {
		lo, err := decimal.NewFromString(lower)
		if err != nil || lo.IsNegative() {
			return PriceRange{}, fmt.Errorf("price range[%s]: %w", s, ErrInvalidPriceRange)
		}
		return PriceRange{Min: lo}, nil
	}

	lower, upper, ok := strings.Cut(token, "-")
	if !ok {
		return PriceRange{}, fmt.Errorf("price range[%s]: %w", s, ErrInvalidPriceRange)
	}
	lo, err := decimal.NewFromString(lower)
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range[%s] lower bound: %w", s, ErrInvalidPriceRange)
	}
	hi, err := decimal.NewFromString(upper)
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range[%s] upper bound: %w", s, ErrInvalidPriceRange)
	}
	if lo.IsNegative() || !hi.GreaterThan(lo) {
		return PriceRange{}, fmt.Errorf("price range[%s] is empty: %w", s, ErrInvalidPriceRange)
	}

	return PriceRange{Min: lo, Max: &hi}, nil
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	if price.LessThan(r.Min) {
		return false
	}
	return r.Max == nil || price.LessThan(*r.Max)
}

func (r PriceRange) String() string {
	if r.Max == nil {
		return r.Min.String() + "+"
	}
	return r.Min.String() + "-" + r.Max.String()
}

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// ParseSortKey maps a sort selector value to a SortKey. The empty string is the
// default order.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case "":
		return SortDefault, nil
	case SortDefault, SortPriceLow, SortPriceHigh, SortRating, SortName:
		return key, nil
	default:
		return "", fmt.Errorf("sort[%s]: %w", s, ErrUnknownSortKey)
	}
}

// FilterCriteria selects books from the catalog. Empty selections do not
// restrict. The four groups are combined with AND; brackets within
// PriceRanges and thresholds within MinRatings are combined with OR.
type FilterCriteria struct {
	Genres      []Genre
	PriceRanges []PriceRange
	MinRatings  []int
	SearchText  string
	Sort        SortKey
}
