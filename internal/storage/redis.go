package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisSlot stores values as plain Redis strings without expiry.
type RedisSlot struct {
	client redisClient
	closer func() error
}

// NewRedisSlot connects to redisURL and verifies the connection.
func NewRedisSlot(ctx context.Context, redisURL string) (*RedisSlot, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: redis.ParseURL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("storage: redis ping failed: %w", err)
	}
	return &RedisSlot{client: rdb, closer: rdb.Close}, nil
}

func newRedisSlotWithClient(client redisClient) *RedisSlot {
	return &RedisSlot{client: client}
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisSlot) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
