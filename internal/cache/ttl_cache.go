package cache

import (
	"sync"
	"time"
)

// Cache memoizes computed values by request identity.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(key K)
}

type entry[V any] struct {
	value    V
	deadline int64
}

// TTLCache is an in-memory cache with per-entry TTLs. Expired entries are
// dropped lazily on read.
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
}

// NewTTLCache constructs an empty TTLCache.
func NewTTLCache[K comparable, V any]() *TTLCache[K, V] {
	return &TTLCache[K, V]{entries: make(map[K]entry[V])}
}

// Get returns the cached value for key if present and unexpired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if e.deadline != 0 && time.Now().UnixNano() > e.deadline {
		c.Delete(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. A non-positive ttl stores it without expiry.
func (c *TTLCache[K, V]) Set(key K, value V, ttl time.Duration) {
	var deadline int64
	if ttl > 0 {
		deadline = time.Now().Add(ttl).UnixNano()
	}
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, deadline: deadline}
	c.mu.Unlock()
}

// Delete removes key from the cache.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Disabled is a Cache that never stores anything, used when memoization is
// switched off in configuration.
type Disabled[K comparable, V any] struct{}

func (Disabled[K, V]) Get(key K) (V, bool) {
	var zero V
	return zero, false
}

func (Disabled[K, V]) Set(key K, value V, ttl time.Duration) {}

func (Disabled[K, V]) Delete(key K) {}
