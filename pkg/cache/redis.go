package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedis connects to the given redis:// URL and pings it. An unreachable
// server is an error so callers can fall back to memory.
func NewRedis(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// New returns a Redis cache when redisURL is set and reachable, otherwise
// an in-memory cache. Cache reads must degrade, never fail the request.
func New(ctx context.Context, redisURL string, logger *zap.Logger) Cache {
	if redisURL == "" {
		return NewMemory()
	}

	redisCache, err := NewRedis(ctx, redisURL)
	if err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, falling back to in-memory cache",
				zap.String("url", redisURL), zap.Error(err))
		}
		return NewMemory()
	}
	return redisCache
}
