package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSlot struct {
	err error
}

func (s failingSlot) Load(context.Context, string) ([]byte, error) { return nil, s.err }
func (s failingSlot) Save(context.Context, string, []byte) error   { return s.err }

func TestCartRepositoryGetCart(t *testing.T) {
	stored := randomCart(3)
	storedJSON, err := repository.EncodeCart(stored)
	require.NoError(t, err)

	tests := []struct {
		name      string
		key       string
		setup     map[string][]byte
		wantCart  domain.Cart
		wantError string
	}{
		{
			name:     "stored cart: ok",
			key:      domain.DefaultCartKey,
			setup:    map[string][]byte{domain.DefaultCartKey: storedJSON},
			wantCart: stored,
		},
		{
			name:     "nothing stored: empty cart",
			key:      domain.DefaultCartKey,
			wantCart: domain.Cart{},
		},
		{
			name:     "malformed value: empty cart",
			key:      domain.DefaultCartKey,
			setup:    map[string][]byte{domain.DefaultCartKey: []byte("not json")},
			wantCart: domain.Cart{},
		},
		{
			name:      "empty key: error",
			key:       "",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			slot := repository.NewMemorySlot()
			for k, v := range tt.setup {
				require.NoError(t, slot.Save(ctx, k, v))
			}

			repo := repository.NewCart(slot, nil)
			cart, err := repo.GetCart(ctx, tt.key)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assertCart(t, tt.wantCart, cart)
		})
	}
}

func TestCartRepositorySaveCart(t *testing.T) {
	ctx := t.Context()
	slot := repository.NewMemorySlot()
	repo := repository.NewCart(slot, nil)

	cart := randomCart(4)
	require.NoError(t, repo.SaveCart(ctx, "k", cart))

	got, err := repo.GetCart(ctx, "k")
	require.NoError(t, err)
	assertCart(t, cart, got)

	require.NoError(t, repo.SaveCart(ctx, "k", domain.Cart{}))
	got, err = repo.GetCart(ctx, "k")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	assert.EqualError(t, repo.SaveCart(ctx, "", cart), "key is empty")
}

func TestCartRepositorySlotFailure(t *testing.T) {
	boom := errors.New("connection refused")
	repo := repository.NewCart(failingSlot{err: boom}, nil)

	_, err := repo.GetCart(t.Context(), "k")
	require.ErrorIs(t, err, boom)

	err = repo.SaveCart(t.Context(), "k", randomCart(1))
	require.ErrorIs(t, err, boom)
}
