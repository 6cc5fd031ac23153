package cachelab

import (
	"sync"

	"github.com/corwin-kz/go-cachelab/internal/keyset"
	"github.com/corwin-kz/go-cachelab/internal/ring"
)

// carEntry is the per-key metadata and value tracked by [CARCache].
// value is meaningful only while isHistory is false.
type carEntry[Value any] struct {
	value     Value
	accessBit bool
	isHistory bool
}

// CARCache implements Clock with Adaptive Replacement (CAR): two clock
// rings, T1 (recency-resident) and T2 (frequency-resident), each backed
// by a history of evicted keys, B1 and B2, and a self-tuning target
// partition size p. Constructed by [NewCAR]. See the package doc and
// §4.6 of the design for the full state machine.
type CARCache[Key comparable, Value any] struct {
	mu                 sync.Mutex
	t1, t2             ring.ClockRing[Key]
	b1, b2             *keyset.KeySet[Key]
	entries            map[Key]*carEntry[Value]
	capacity, cacheSize int
	p                  int
	misses             uint64
	loader             Loader[Key, Value]
}

// MinimumCARCapacity is the lowest capacity [NewCAR] accepts: it must
// allow cacheSize = capacity/2 to be at least 1.
const MinimumCARCapacity = 2

// NewCAR creates a [CARCache] with the given capacity.
func NewCAR[Key comparable, Value any](capacity int, loader Loader[Key, Value]) (*CARCache[Key, Value], error) {
	if capacity < MinimumCARCapacity {
		return nil, minCapacityError(capacity, MinimumCARCapacity)
	}
	return &CARCache[Key, Value]{
		b1:        keyset.New[Key](),
		b2:        keyset.New[Key](),
		entries:   make(map[Key]*carEntry[Value], capacity),
		capacity:  capacity,
		cacheSize: capacity / 2,
		loader:    loader,
	}, nil
}

// Get returns the value for key, consulting and possibly mutating the
// clocks, histories, and target size p as described in §4.6.
func (c *CARCache[Key, Value]) Get(key Key) (Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && !e.isHistory {
		e.accessBit = true
		return e.value, nil
	}
	return c.handleMiss(key)
}

func (c *CARCache[Key, Value]) resident() int { return c.t1.Len() + c.t2.Len() }
func (c *CARCache[Key, Value]) ghosts() int   { return c.b1.Len() + c.b2.Len() }

// handleMiss loads the value for a non-resident key and installs it,
// classifying the miss as fresh, a B1 (recency-ghost) hit, or a B2
// (frequency-ghost) hit. The loader is invoked before any state is
// mutated, so a failing loader leaves the cache exactly as it was.
func (c *CARCache[Key, Value]) handleMiss(key Key) (Value, error) {
	var (
		inB1 = c.b1.Contains(key)
		inB2 = c.b2.Contains(key)
	)
	value, err := c.loader(key)
	if err != nil {
		var zero Value
		return zero, err
	}
	if c.resident() == c.cacheSize {
		c.replace()
		if !inB1 && !inB2 {
			c.trimHistories()
		}
	}
	switch {
	case !inB1 && !inB2:
		c.misses++
		c.entries[key] = &carEntry[Value]{value: value}
		c.t1.Insert(key)
	case inB1:
		delta := max(1, c.b2.Len()/c.b1.Len())
		c.p = min(c.cacheSize, c.p+delta)
		c.b1.Erase(key)
		c.entries[key] = &carEntry[Value]{value: value}
		c.t2.Insert(key)
	default: // inB2
		delta := max(1, c.b1.Len()/c.b2.Len())
		c.p = max(0, c.p-delta)
		c.b2.Erase(key)
		c.entries[key] = &carEntry[Value]{value: value}
		c.t2.Insert(key)
	}
	c.checkInvariants()
	return value, nil
}

// checkInvariants verifies the size and range invariants of §3/§4.6
// that must hold after every miss. Compiled out unless built with the
// cachelab_debug tag.
func (c *CARCache[Key, Value]) checkInvariants() {
	assert(c.resident() <= c.cacheSize, "car: resident set exceeds cache_size")
	assert(len(c.entries) <= c.capacity, "car: entry table exceeds capacity")
	assert(c.p >= 0 && c.p <= c.cacheSize, "car: p out of [0,cache_size]")
}

// replace sweeps T1 and/or T2 until exactly one resident entry has been
// demoted to its history list. See §4.6.3.
func (c *CARCache[Key, Value]) replace() {
	for {
		if c.t1.Len() >= max(1, c.p) {
			c.t1.Advance()
			v := c.t1.Peek()
			e := c.entries[v]
			if !e.accessBit {
				e.isHistory = true
				c.b1.Touch(v)
				c.t1.RemoveAtHand()
				return
			}
			e.accessBit = false
			c.t1.RemoveAtHand()
			c.t2.Insert(v)
			continue
		}
		c.t2.Advance()
		v := c.t2.Peek()
		e := c.entries[v]
		if !e.accessBit {
			e.isHistory = true
			c.b2.Touch(v)
			c.t2.RemoveAtHand()
			return
		}
		e.accessBit = false
	}
}

// trimHistories enforces the size invariants on B1/B2 after a fresh
// (non-ghost) miss made room via replace. See §4.6.4.
func (c *CARCache[Key, Value]) trimHistories() {
	switch {
	case c.t1.Len()+c.b1.Len() == c.cacheSize:
		delete(c.entries, c.b1.PopTail())
	case c.resident()+c.ghosts() == c.capacity:
		delete(c.entries, c.b2.PopTail())
	}
}

// Misses returns the number of true loads performed since construction
// (ghost hits still invoke the loader but do not count as misses).
func (c *CARCache[Key, Value]) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// Size returns the number of tracked entries, resident plus ghost.
func (c *CARCache[Key, Value]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Name returns "CAR".
func (c *CARCache[Key, Value]) Name() string { return "CAR" }
