// Package cart implements the shopping cart: line item mutations persisted
// through a CartRepository, plus the derived item count and price summary.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

type Store struct {
	repo     port.CartRepository
	catalog  port.CatalogRepository
	key      string
	observer port.CountObserver
	pricing  Pricing
	logger   *slog.Logger
}

type Option func(*Store)

// WithKey sets the slot key the cart is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithObserver registers the observer told about the item count after each mutation.
func WithObserver(o port.CountObserver) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithPricing(p Pricing) Option {
	return func(s *Store) {
		s.pricing = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStore(repo port.CartRepository, catalog port.CatalogRepository, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		catalog:  catalog,
		key:      domain.DefaultCartKey,
		observer: port.CountObserverFunc(func(context.Context, int) {}),
		pricing:  DefaultPricing,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cart returns the stored cart. It never fails: a cart that cannot be read
// is reported in the log and treated as empty.
func (s *Store) Cart(ctx context.Context) domain.Cart {
	c, err := s.repo.GetCart(ctx, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "cart unavailable, showing an empty cart", "key", s.key, "error", err)
		return domain.Cart{}
	}
	return c
}

// AddItem puts one copy of the book in the cart. A book already in the cart
// gets its quantity raised by one; its snapshot is kept.
func (s *Store) AddItem(ctx context.Context, bookID int) error {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			s.logger.WarnContext(ctx, "book not found", "book_id", bookID)
		}
		return fmt.Errorf("catalog.GetBook: %w", err)
	}

	c, err := s.load(ctx)
	if err != nil {
		return err
	}

	if i, ok := c.Find(bookID); ok {
		c.Items[i].Quantity++
	} else {
		c.Items = append(c.Items, domain.NewCartItem(book))
	}

	return s.save(ctx, c)
}

// RemoveItem drops the line item for bookID. Removing a book that is not in
// the cart is not an error.
func (s *Store) RemoveItem(ctx context.Context, bookID int) error {
	c, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.BookID != bookID {
			kept = append(kept, item)
		}
	}
	c.Items = kept

	return s.save(ctx, c)
}

// SetQuantity sets the quantity of a line item. Quantities below 1 remove the
// item. A book that is not in the cart is left out and nothing is written.
func (s *Store) SetQuantity(ctx context.Context, bookID, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, bookID)
	}

	c, err := s.load(ctx)
	if err != nil {
		return err
	}

	i, ok := c.Find(bookID)
	if !ok {
		return nil
	}
	c.Items[i].Quantity = quantity

	return s.save(ctx, c)
}

// SetQuantityInput is SetQuantity for raw form input; see domain.ParseQuantity.
// Input that is not a number changes nothing.
func (s *Store) SetQuantityInput(ctx context.Context, bookID int, raw string) error {
	quantity, err := domain.ParseQuantity(raw)
	if err != nil {
		return fmt.Errorf("domain.ParseQuantity: %w", err)
	}
	return s.SetQuantity(ctx, bookID, quantity)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.save(ctx, domain.Cart{})
}

// Checkout refuses an empty cart. Payment is not wired, so a non-empty cart
// gets domain.ErrCheckoutUnavailable.
func (s *Store) Checkout(ctx context.Context) error {
	if s.Cart(ctx).IsEmpty() {
		return domain.ErrEmptyCart
	}
	return domain.ErrCheckoutUnavailable
}

func (s *Store) Summary(c domain.Cart) domain.Summary {
	return Summarize(c, s.pricing)
}

func ItemCount(c domain.Cart) int {
	return c.ItemCount()
}

// Badge returns the label for the cart badge and whether the badge is shown.
func Badge(count int) (string, bool) {
	if count <= 0 {
		return "", false
	}
	return strconv.Itoa(count), true
}

func (s *Store) load(ctx context.Context) (domain.Cart, error) {
	c, err := s.repo.GetCart(ctx, s.key)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}
	return c, nil
}

func (s *Store) save(ctx context.Context, c domain.Cart) error {
	if err := s.repo.SaveCart(ctx, s.key, c); err != nil {
		return fmt.Errorf("repo.SaveCart: %w", err)
	}

	count := c.ItemCount()
	s.logger.DebugContext(ctx, "cart saved", "key", s.key, "lines", len(c.Items), "items", count)
	s.observer.ItemCountChanged(ctx, count)
	return nil
}
