package cache

import (
	"context"
	"time"
)

// defaultBackfillTTL bounds how long an L2 hit stays in L1. Kept below
// the shortest loader TTL so a restarted process cannot pin a stale
// snapshot past its source window.
const defaultBackfillTTL = time.Minute

// LayeredCache is a two-level cache: L1 memory, L2 Redis. Reads fill L1
// from L2; writes go through to both.
type LayeredCache struct {
	memCache    *MemoryCache
	l2          Service
	backfillTTL time.Duration
}

// LayeredOption configures a LayeredCache.
type LayeredOption func(*LayeredCache)

// WithBackfillTTL sets how long L2 hits are retained in L1.
func WithBackfillTTL(ttl time.Duration) LayeredOption {
	return func(lc *LayeredCache) {
		if ttl > 0 {
			lc.backfillTTL = ttl
		}
	}
}

// NewLayeredCache creates a layered cache over an existing Redis cache.
func NewLayeredCache(redisCache *RedisCache, opts ...LayeredOption) *LayeredCache {
	lc := &LayeredCache{
		memCache:    NewMemoryCache(),
		l2:          redisCache,
		backfillTTL: defaultBackfillTTL,
	}
	for _, opt := range opts {
		opt(lc)
	}
	return lc
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := lc.l2.Set(ctx, key, value, expiration); err != nil {
		return err
	}
	_ = lc.memCache.Set(ctx, key, value, expiration)
	return nil
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if err := lc.memCache.Get(ctx, key, dest); err == nil {
		return nil
	}
	if err := lc.l2.Get(ctx, key, dest); err != nil {
		return err
	}
	_ = lc.memCache.Set(ctx, key, dest, lc.backfillTTL)
	return nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.memCache.Delete(ctx, keys...)
	return lc.l2.Delete(ctx, keys...)
}

func (lc *LayeredCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	return lc.l2.Exists(ctx, keys...)
}

// Close closes both layers.
func (lc *LayeredCache) Close() error {
	_ = lc.memCache.Close()
	return lc.l2.Close()
}
