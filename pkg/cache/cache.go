// Package cache provides the snapshot cache behind the sheet loaders:
// an in-memory L1, an optional Redis L2, and a layered combination.
// Values are stored JSON-encoded so snapshots survive process restarts
// when Redis is enabled.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines the cache operations the loaders rely on.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
	Close() error
}
