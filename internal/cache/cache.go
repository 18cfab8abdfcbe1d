package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a bounded TTL cache. Entries are dropped when capacity is
// exceeded or their TTL lapses. Safe for concurrent use. It exists as a
// read-through convenience only and must never be treated as a source of
// authentication truth.
type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// New creates a cache bounded to capacity entries with a fixed ttl.
// Callers construct it at process start and pass it to whoever needs it;
// there is no package-level instance.
func New[K comparable, V any](capacity int, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](capacity, nil, ttl)}
}

// Get returns the cached value for key if present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Add stores value under key, evicting the least recently used entry if
// the cache is full.
func (c *Cache[K, V]) Add(key K, value V) {
	c.lru.Add(key, value)
}

// Remove drops key from the cache if present.
func (c *Cache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}
