package domain

type Summary struct {
	Subtotal Money
	Tax      Money
	Shipping Money
	Total    Money
}
