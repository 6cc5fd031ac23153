package cachelab

import (
	"sync"

	"github.com/corwin-kz/go-cachelab/internal/keyset"
)

// LRUCache is the reference baseline policy: plain least-recently-used
// eviction over a single ordered list. Constructed by [NewLRU].
type LRUCache[Key comparable, Value any] struct {
	mu       sync.Mutex
	order    *keyset.KeySet[Key]
	entries  map[Key]Value
	capacity int
	misses   uint64
	loader   Loader[Key, Value]
}

// NewLRU creates an [LRUCache] with the given capacity, which must be
// at least 1.
func NewLRU[Key comparable, Value any](capacity int, loader Loader[Key, Value]) (*LRUCache[Key, Value], error) {
	const minimum = 1
	if capacity < minimum {
		return nil, minCapacityError(capacity, minimum)
	}
	return &LRUCache[Key, Value]{
		order:    keyset.New[Key](),
		entries:  make(map[Key]Value, capacity),
		capacity: capacity,
		loader:   loader,
	}, nil
}

// Get returns the value for key, loading it via the configured loader
// on a miss. See §4.5.
func (c *LRUCache[Key, Value]) Get(key Key) (Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok := c.entries[key]; ok {
		c.order.Touch(key)
		return value, nil
	}
	value, err := c.loader(key)
	if err != nil {
		var zero Value
		return zero, err
	}
	c.misses++
	if c.order.Len() == c.capacity {
		evicted := c.order.PopTail()
		delete(c.entries, evicted)
	}
	c.entries[key] = value
	c.order.Touch(key)
	assert(c.order.Len() <= c.capacity, "lru: resident set exceeds capacity")
	assert(c.order.Len() == len(c.entries), "lru: order and entry table sizes diverged")
	return value, nil
}

// Misses returns the number of loads performed since construction.
func (c *LRUCache[Key, Value]) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// Size returns the number of resident entries (LRU keeps no ghosts).
func (c *LRUCache[Key, Value]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Name returns "LRU".
func (c *LRUCache[Key, Value]) Name() string { return "LRU" }
