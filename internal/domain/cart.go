package domain

// DefaultCartKey is the slot key the storefront page has always stored the cart under.
const DefaultCartKey = "bookverse_cart"

type Cart struct {
	Items []CartItem
}

// CartItem is a line item. Title, Author, Price and Image are a snapshot of the
// book taken when the item was first added; later catalog changes do not apply.
type CartItem struct {
	BookID   int
	Title    string
	Author   string
	Price    Money
	Image    string
	Quantity int
}

// NewCartItem snapshots the book into a line item with quantity 1.
func NewCartItem(b Book) CartItem {
	return CartItem{
		BookID:   b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		Image:    b.Image,
		Quantity: 1,
	}
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(decimalFromInt(i.Quantity))
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of quantities, shown as the cart badge.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Find returns the index of the line item for bookID.
func (c Cart) Find(bookID int) (int, bool) {
	for i, item := range c.Items {
		if item.BookID == bookID {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a cart whose item slice can be mutated independently.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
