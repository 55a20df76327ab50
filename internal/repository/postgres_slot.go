package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/db"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

type postgresSlot struct {
	q *db.Queries
}

// NewPostgresSlot keeps cart values in the cart_state table.
func NewPostgresSlot(pool *pgxpool.Pool) port.StateSlot {
	return &postgresSlot{
		q: db.New(pool),
	}
}

// NewPostgresSlotWithTx runs slot operations inside an existing transaction.
func NewPostgresSlotWithTx(tx pgx.Tx) port.StateSlot {
	return &postgresSlot{
		q: db.New(tx),
	}
}

func (s *postgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.q.GetCartState(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetCartState: %w", err)
	}

	return value, nil
}

func (s *postgresSlot) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := s.q.UpsertCartState(ctx, db.UpsertCartStateParams{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertCartState: %w", err)
	}

	return nil
}
