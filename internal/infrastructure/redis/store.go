package redisinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-finance-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient builds a go-redis client from the configured cache URL.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.CacheURL)
	if err != nil {
		return nil, fmt.Errorf("parse cache url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// Store is the expiring key-value adapter backing OTP storage. GETDEL gives
// the atomic get-and-delete: two racing consumers of the same key cannot both
// observe the value, which is the whole concurrency story for one-time codes.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get returns the live value for key. A missing or expired key is ok=false
// with a nil error; only transport failures surface as errors.
func (s *Store) Get(ctx context.Context, key string, del bool) (string, bool, error) {
	var cmd *redis.StringCmd
	if del {
		cmd = s.client.GetDel(ctx, key)
	} else {
		cmd = s.client.Get(ctx, key)
	}
	value, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set unconditionally stores value under key, replacing any prior entry and
// its expiration. ttl <= 0 stores without expiry.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) (string, error) {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return value, nil
}
