// Package cache holds the Redis backed stores: idempotency keys and order statuses.
package cache

import (
	"context"
	"log/slog"
	"strings"

	"shop/config"
	"shop/internal/domain/lifecycle"
	"shop/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the Redis client, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Connect initializes a Redis client from a redis:// URL or a host:port address.
func Connect(redisURL, password string, db int) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}

		return redis.NewClient(opt), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	}), nil
}

// NewClient creates the shared Redis client. It returns nil when Redis is not
// configured; the stores then fall back to their no-op versions.
func NewClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, idempotency and status cache disabled")

		return nil, nil
	}

	client, err := Connect(cfg.URL, cfg.Password, cfg.DB)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Module provides the Redis client and both stores
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewIdempotencyStore,
		NewOrderStatusCache,
	),
)
