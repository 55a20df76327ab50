package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// cartItemJSON is the stored shape of a line item. Price is a JSON number so
// values written by the storefront page decode unchanged.
type cartItemJSON struct {
	ID       int         `json:"id"`
	Title    string      `json:"title"`
	Author   string      `json:"author"`
	Price    json.Number `json:"price"`
	Currency string      `json:"currency,omitempty"`
	Image    string      `json:"image"`
	Quantity int         `json:"quantity"`
}

// EncodeCart serializes the cart as a JSON array of line items in cart order.
func EncodeCart(cart domain.Cart) ([]byte, error) {
	items := make([]cartItemJSON, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, mapCartItemToJSON(item))
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// DecodeCart parses a stored cart. Any structural problem is reported as
// domain.ErrMalformedState.
func DecodeCart(data []byte) (domain.Cart, error) {
	var raw []cartItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", domain.ErrMalformedState, err)
	}

	items, err := mapJSONToCartItems(raw)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", domain.ErrMalformedState, err)
	}

	return domain.Cart{Items: items}, nil
}

func mapCartItemToJSON(item domain.CartItem) cartItemJSON {
	var unit string
	if item.Price.Currency != currency.USD {
		unit = item.Price.Currency.String()
	}

	return cartItemJSON{
		ID:       item.BookID,
		Title:    item.Title,
		Author:   item.Author,
		Price:    json.Number(item.Price.Amount.String()),
		Currency: unit,
		Image:    item.Image,
		Quantity: item.Quantity,
	}
}

func mapJSONToCartItem(raw cartItemJSON) (domain.CartItem, error) {
	if raw.ID <= 0 {
		return domain.CartItem{}, fmt.Errorf("id[%d] is not positive", raw.ID)
	}
	if raw.Quantity < 1 {
		return domain.CartItem{}, fmt.Errorf("item[%d]: quantity[%d] is below 1", raw.ID, raw.Quantity)
	}

	amount, err := decimal.NewFromString(raw.Price.String())
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("item[%d]: price[%s] is not valid: %w", raw.ID, raw.Price, err)
	}
	if amount.IsNegative() {
		return domain.CartItem{}, fmt.Errorf("item[%d]: price[%s] is negative", raw.ID, raw.Price)
	}

	unit := currency.USD
	if raw.Currency != "" {
		unit, err = currency.ParseISO(raw.Currency)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("item[%d]: currency[%s] is not valid: %w", raw.ID, raw.Currency, err)
		}
	}

	return domain.CartItem{
		BookID:   raw.ID,
		Title:    raw.Title,
		Author:   raw.Author,
		Price:    domain.Money{Amount: amount, Currency: unit},
		Image:    raw.Image,
		Quantity: raw.Quantity,
	}, nil
}

func mapJSONToCartItems(raws []cartItemJSON) ([]domain.CartItem, error) {
	var items []domain.CartItem
	seen := make(map[int]struct{}, len(raws))

	for _, raw := range raws {
		item, err := mapJSONToCartItem(raw)
		if err != nil {
			return nil, fmt.Errorf("mapJSONToCartItem: %w", err)
		}

		if _, dup := seen[item.BookID]; dup {
			return nil, fmt.Errorf("item[%d] appears more than once", item.BookID)
		}
		seen[item.BookID] = struct{}{}

		items = append(items, item)
	}

	return items, nil
}
