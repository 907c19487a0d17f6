package cache

import (
	"context"
	"time"

	"shop/config"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// RedisIdempotencyStore claims keys with SET NX and remembers results next to them.
type RedisIdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisIdempotencyStore creates a store whose keys expire after ttl.
func NewRedisIdempotencyStore(rdb *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	return &RedisIdempotencyStore{rdb: rdb, ttl: ttl}
}

// NewIdempotencyStore picks the Redis store when a client is available.
func NewIdempotencyStore(rdb *redis.Client, cfg *config.Config) service.IdempotencyStore {
	if rdb == nil {
		return noopIdempotencyStore{}
	}

	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.IdempotencyTTL
	}

	return NewRedisIdempotencyStore(rdb, ttl)
}

func lockKey(scope, key string) string {
	return "idemp:" + scope + ":" + key
}

func resultKey(scope, key string) string {
	return "idemp:map:" + scope + ":" + key
}

// TryLock claims the key. It returns false when another request holds it.
func (s *RedisIdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, lockKey(scope, key), "1", s.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to lock idempotency key")
	}

	return ok, nil
}

// Remember stores the result produced for the key.
func (s *RedisIdempotencyStore) Remember(ctx context.Context, scope, key, value string) error {
	return errors.WithStack(s.rdb.Set(ctx, resultKey(scope, key), value, s.ttl).Err())
}

// Recall returns the stored result, if any.
func (s *RedisIdempotencyStore) Recall(ctx context.Context, scope, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, resultKey(scope, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to recall idempotency key")
	}

	return val, true, nil
}

// Release drops the claim so the key can be retried after a failure.
func (s *RedisIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return errors.WithStack(s.rdb.Del(ctx, lockKey(scope, key)).Err())
}

// noopIdempotencyStore accepts every key and remembers nothing.
type noopIdempotencyStore struct{}

func (noopIdempotencyStore) TryLock(context.Context, string, string) (bool, error) {
	return true, nil
}

func (noopIdempotencyStore) Remember(context.Context, string, string, string) error {
	return nil
}

func (noopIdempotencyStore) Recall(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

func (noopIdempotencyStore) Release(context.Context, string, string) error {
	return nil
}

var (
	_ service.IdempotencyStore = (*RedisIdempotencyStore)(nil)
	_ service.IdempotencyStore = noopIdempotencyStore{}
)
