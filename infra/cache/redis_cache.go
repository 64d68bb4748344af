package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRevocationStore keeps revoked token ids in Redis with a TTL equal to
// the remaining lifetime of the token, so entries vanish on their own.
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisRevocationStore creates a store from a redis:// URL.
func NewRedisRevocationStore(
	url string,
	prefix string,
	logger *slog.Logger,
) (*RedisRevocationStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisRevocationStoreWithOptions(opt, prefix, logger), nil
}

// NewRedisRevocationStoreWithOptions creates a store from redis.Options.
func NewRedisRevocationStoreWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisRevocationStore {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(opt)
	return &RedisRevocationStore{client: client, prefix: prefix, logger: logger}
}

func (r *RedisRevocationStore) key(id string) string {
	return r.prefix + id
}

// Ping checks connectivity.
func (r *RedisRevocationStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client connections.
func (r *RedisRevocationStore) Close() error {
	return r.client.Close()
}

// Revoke marks id as revoked for ttl.
func (r *RedisRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(id), "1", ttl).Err(); err != nil {
		r.logger.Error("Redis revoke error", "key", id, "error", err)
		return err
	}
	r.logger.Debug("Redis token revoked", "key", id, "ttl", ttl)
	return nil
}

// IsRevoked reports whether id is present in the store.
func (r *RedisRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	err := r.client.Get(ctx, r.key(id)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("Redis revocation lookup error", "key", id, "error", err)
		return false, err
	}
	return true, nil
}
