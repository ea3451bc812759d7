package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the in-process cache backend.
type MemoryCache struct {
	inner *gocache.Cache
}

func NewMemoryCache(expiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		inner: gocache.New(expiration, cleanupInterval),
	}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	value, found := c.inner.Get(key)
	if !found {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func (c *MemoryCache) Set(key string, value string) error {
	c.inner.SetDefault(key, value)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.inner.Delete(key)
	return nil
}
