package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the shared cache backend for multi-instance deployments.
type RedisCache struct {
	client     *redis.Client
	ctx        context.Context
	expiration time.Duration
}

func NewRedisCache(addr string, expiration time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client:     rdb,
		ctx:        context.Background(),
		expiration: expiration,
	}
}

func (c *RedisCache) Get(key string) (string, bool) {
	val, err := c.client.Get(c.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(key string, value string) error {
	return c.client.Set(c.ctx, key, value, c.expiration).Err()
}

func (c *RedisCache) Delete(key string) error {
	return c.client.Del(c.ctx, key).Err()
}
