package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"carebird/internal/config"
	"carebird/internal/core"
)

// Redis implements core.KeyValueStore on a single redis instance.
type Redis struct {
	Logger *slog.Logger
	Config *config.Config

	client *redis.Client
}

func (r *Redis) Init(ctx context.Context) error {
	r.Logger = r.Logger.With("component", "cache.Redis")

	opts, err := redis.ParseURL(r.Config.RedisURL)
	if err != nil {
		return err
	}

	r.client = redis.NewClient(opts)

	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrNotFound
	}

	return value, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Shutdown(_ context.Context) error {
	return r.client.Close()
}
