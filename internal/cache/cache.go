package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the page cache handed to the handlers that need one. It is
// constructed once and injected; nothing in the package keeps a client of
// its own. A Cache over a nil client is valid and caches nothing.
type Cache struct {
	client *redis.Client
}

// New wraps the given Redis client in a Cache.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON attempts to get the key and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c != nil && c.client != nil {
		c.client.Del(ctx, key)
	}
}

// InvalidateIndex clears every cached index page. This is the only
// event-based invalidation in the system; everything else is TTL-driven.
func (c *Cache) InvalidateIndex(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	keys, err := c.client.Keys(ctx, IndexKeyPattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
