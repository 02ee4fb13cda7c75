package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/school-portal-api/pkg/config"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// RedisStore keeps portal keys in a dedicated Redis logical database. Keys
// are persistent; there is no TTL on portal data.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects a Redis-backed store and verifies the connection.
func NewRedis(cfg config.RedisConfig) (*RedisStore, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisWithClient wraps an existing client (tests).
func NewRedisWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("redis get %s", key))
	}
	return raw, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		if strings.Contains(err.Error(), "OOM") {
			return appErrors.Wrap(err, appErrors.ErrStoreFull.Code, fmt.Sprintf("redis set %s", key))
		}
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("redis set %s", key))
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("redis del %s", key))
	}
	return nil
}

// Clear wipes the configured logical database.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, "redis flushdb")
	}
	return nil
}

// Close releases the underlying connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
