package cache

import (
	"context"
	"time"

	"shop/config"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStatusCache stores order statuses under order:status:<id>.
type RedisStatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStatusCache creates a cache; a zero ttl keeps entries forever.
func NewRedisStatusCache(rdb *redis.Client, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{rdb: rdb, ttl: ttl}
}

// NewOrderStatusCache picks the Redis cache when a client is available.
func NewOrderStatusCache(rdb *redis.Client, cfg *config.Config) service.OrderStatusCache {
	if rdb == nil {
		return noopStatusCache{}
	}

	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.StatusTTL
	}

	return NewRedisStatusCache(rdb, ttl)
}

func statusKey(orderID uuid.UUID) string {
	return "order:status:" + orderID.String()
}

// SetStatus stores the status of an order.
func (r *RedisStatusCache) SetStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	return errors.WithStack(r.rdb.Set(ctx, statusKey(orderID), status, r.ttl).Err())
}

// GetStatus returns the cached status, reporting false on a miss.
func (r *RedisStatusCache) GetStatus(ctx context.Context, orderID uuid.UUID) (string, bool, error) {
	val, err := r.rdb.Get(ctx, statusKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read order status")
	}

	return val, true, nil
}

// noopStatusCache never holds anything.
type noopStatusCache struct{}

func (noopStatusCache) SetStatus(context.Context, uuid.UUID, string) error {
	return nil
}

func (noopStatusCache) GetStatus(context.Context, uuid.UUID) (string, bool, error) {
	return "", false, nil
}

var (
	_ service.OrderStatusCache = (*RedisStatusCache)(nil)
	_ service.OrderStatusCache = noopStatusCache{}
)
