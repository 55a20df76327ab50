package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/bookverse/internal/domain"
)

// MemorySlot keeps values in process memory. Safe for concurrent use.
type MemorySlot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{
		data: make(map[string][]byte),
	}
}

// Load returns a copy of the stored value.
func (m *MemorySlot) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Save stores a copy of value under key.
func (m *MemorySlot) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = stored
	return nil
}
