package port

import (
	"context"

	"github.com/nikolayk812/bookverse/internal/domain"
)

// StateSlot is a key-value slot holding one serialized value per key.
// Load returns domain.ErrStateNotFound when nothing was saved under the key.
// Save replaces the whole value.
type StateSlot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type CartRepository interface {
	GetCart(ctx context.Context, key string) (domain.Cart, error)
	SaveCart(ctx context.Context, key string, cart domain.Cart) error
}

// CountObserver is told about the cart item count after every mutation.
type CountObserver interface {
	ItemCountChanged(ctx context.Context, count int)
}

type CountObserverFunc func(ctx context.Context, count int)

func (f CountObserverFunc) ItemCountChanged(ctx context.Context, count int) {
	f(ctx, count)
}
