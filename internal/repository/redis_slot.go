package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/redis/go-redis/v9"
)

type redisSlot struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisSlot keeps cart values as plain Redis strings. A zero ttl keeps
// values until they are overwritten.
func NewRedisSlot(client redis.UniversalClient, ttl time.Duration) port.StateSlot {
	return &redisSlot{
		client: client,
		ttl:    ttl,
	}
}

// OpenRedis connects to the Redis server at url and checks it responds.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping: %w", err)
	}

	return client, nil
}

func (s *redisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	return value, nil
}

func (s *redisSlot) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
