// Package memocache provides a bounded in-process cache with insertion-order
// eviction. Eviction is deliberately FIFO rather than LRU: reads do not
// refresh an entry's position, and when the cache is full the oldest
// insertion is dropped first. Callers that want recency semantics must not
// assume them here.
package memocache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
)

// Cache is a size-capped string-keyed cache with FIFO eviction.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]V
	order    []string
	hits     atomic.Int64
	misses   atomic.Int64
}

// Stats reports cache performance counters.
type Stats struct {
	Entries int64 `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// New creates a Cache holding at most capacity entries. A capacity below 1
// is clamped to 1.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
	}
}

// Get retrieves a cached value. The zero value and false are returned on miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	v, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Put stores a value. Re-inserting an existing key overwrites the value but
// keeps the key's original queue position. When full, the oldest insertion
// is evicted.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries. Hit/miss counters are preserved.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V, c.capacity)
	c.order = nil
}

// ResetStats zeroes the hit/miss counters without touching entries.
func (c *Cache[V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns cache performance counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	n := int64(len(c.entries))
	c.mu.Unlock()
	return Stats{
		Entries: n,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// HashKey computes a stable SHA-256 key over the given parts.
func HashKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
