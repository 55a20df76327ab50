package cart

import (
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/shopspring/decimal"
)

// Pricing holds the flat charges applied on top of the line items.
type Pricing struct {
	TaxRate     decimal.Decimal
	ShippingFee domain.Money
}

// DefaultPricing is 8% tax and a flat $5.99 shipping fee.
var DefaultPricing = Pricing{
	TaxRate:     decimal.RequireFromString("0.08"),
	ShippingFee: domain.USD(decimal.RequireFromString("5.99")),
}

// Summarize prices the cart. Shipping is charged only on a non-empty cart.
// Amounts are exact; round them when presenting.
func Summarize(c domain.Cart, p Pricing) domain.Summary {
	subtotal := domain.USD(decimal.Zero)
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := domain.Money{Amount: decimal.Zero, Currency: p.ShippingFee.Currency}
	if !c.IsEmpty() {
		shipping = p.ShippingFee
	}

	tax := subtotal.Mul(p.TaxRate)

	return domain.Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
