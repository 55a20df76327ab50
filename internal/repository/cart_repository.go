package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

type cartRepository struct {
	slot   port.StateSlot
	logger *slog.Logger
}

// NewCart stores carts as JSON values in slot. A nil logger discards output.
func NewCart(slot port.StateSlot, logger *slog.Logger) port.CartRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &cartRepository{
		slot:   slot,
		logger: logger,
	}
}

// GetCart returns the empty cart when nothing is stored under key or when the
// stored value cannot be decoded. Only slot failures are returned as errors.
func (r *cartRepository) GetCart(ctx context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	data, err := r.slot.Load(ctx, key)
	if errors.Is(err, domain.ErrStateNotFound) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("slot.Load: %w", err)
	}

	cart, err := DecodeCart(data)
	if err != nil {
		r.logger.WarnContext(ctx, "discarding malformed cart state", "key", key, "error", err)
		return domain.Cart{}, nil
	}

	return cart, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	data, err := EncodeCart(cart)
	if err != nil {
		return fmt.Errorf("EncodeCart: %w", err)
	}

	if err := r.slot.Save(ctx, key, data); err != nil {
		return fmt.Errorf("slot.Save: %w", err)
	}

	return nil
}
