package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheService is the response cache used by the upstream data layer.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RedisCache is the Redis-backed implementation.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis cache service.
func NewRedisCache(client *redis.Client, mode string) CacheService {
	prefix := "stars-admin:"
	if mode == "test" {
		prefix = "test:" + prefix
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
	}
}

func (c *RedisCache) getKey(key string) string {
	return c.prefix + key
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, c.getKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, c.getKey(key), data, expiration).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = c.getKey(key)
	}
	return c.client.Del(ctx, fullKeys...).Err()
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	result, err := c.client.Exists(ctx, c.getKey(key)).Result()
	return result > 0, err
}

// MemoryCache is an in-process implementation backed by an expirable LRU,
// used in development and tests. The TTL is fixed at construction; the
// per-call expiration argument is ignored.
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryCache creates a memory cache holding up to size entries for ttl.
func NewMemoryCache(size int, ttl time.Duration) CacheService {
	return &MemoryCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.lru.Get(key)
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	c.lru.Add(key, data)
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.lru.Remove(key)
	}
	return nil
}

func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.lru.Get(key)
	return ok, nil
}

