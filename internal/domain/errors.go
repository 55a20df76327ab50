package domain

import "errors"

var (
	ErrBookNotFound        = errors.New("book not found")
	ErrStateNotFound       = errors.New("cart state not found")
	ErrMalformedState      = errors.New("cart state is malformed")
	ErrInvalidQuantity     = errors.New("quantity is not a number")
	ErrInvalidPriceRange   = errors.New("price range is not valid")
	ErrUnknownGenre        = errors.New("unknown genre")
	ErrUnknownSortKey      = errors.New("unknown sort key")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrCheckoutUnavailable = errors.New("checkout requires a payment gateway")
)
