// internal/common/database/redis.go
package database

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the score cache connection.
type RedisClient struct {
	Client *redis.Client
}

func NewRedis(cfg config.RedisConfig) *RedisClient {
	return &RedisClient{Client: redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})}
}

// NewRedisFromClient wraps an existing client, e.g. one pointed at miniredis.
func NewRedisFromClient(client *redis.Client) *RedisClient {
	return &RedisClient{Client: client}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheUnavailableError(err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// GetJSON decodes the value at key into dst. found is false on a cache miss.
func (c *RedisClient) GetJSON(ctx context.Context, key string, dst interface{}) (found bool, err error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewCacheUnavailableError(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.NewCacheUnavailableError(err)
	}
	return true, nil
}

// SetJSON stores value as JSON under key for ttl.
func (c *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheUnavailableError(err)
	}
	if err := c.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.NewCacheUnavailableError(err)
	}
	return nil
}
