// Package ratelimit provides the per-client burst limiter that fronts the
// appraise endpoint. It smooths request spikes; the daily quota itself
// lives in the SQLite usage store.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a keyed token bucket. All buckets share one capacity and
// refill rate, fixed at construction.
type Limiter struct {
	capacity     float64
	refillPerSec float64

	mu sync.Mutex
	m  map[string]*bucket
}

func New(capacity, refillPerSec float64) *Limiter {
	if capacity <= 0 {
		capacity = 5
	}
	if refillPerSec <= 0 {
		refillPerSec = 0.5
	}
	return &Limiter{
		capacity:     capacity,
		refillPerSec: refillPerSec,
		m:            make(map[string]*bucket),
	}
}

// Allow consumes one token for key if available.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: now}
		l.m[key] = b
	}
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.refillPerSec
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Prune drops buckets idle longer than maxIdle, bounding memory on
// long-running processes.
func (l *Limiter) Prune(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.m {
		if b.last.Before(cutoff) {
			delete(l.m, key)
		}
	}
}
