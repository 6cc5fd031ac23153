package cachelab

import (
	"sync"

	"github.com/corwin-kz/go-cachelab/internal/fifo"
	"github.com/corwin-kz/go-cachelab/internal/keyset"
)

// filterBit classifies a CART page's temporal inter-reference recency.
type filterBit int

const (
	filterShort filterBit = iota
	filterLong
)

// cartEntry is the per-key metadata and value tracked by [CARTCache].
type cartEntry[Value any] struct {
	value     Value
	accessBit bool
	isHistory bool
	filter    filterBit
}

// CARTCache implements CAR with Temporal filtering (CART): like
// [CARCache], but T1/T2 are plain FIFOs rather than clocks, and every
// entry carries a Short/Long filter bit that guards against scans: a
// fresh page starts Short and becomes Long when it returns from a ghost
// list, or when replace cycles it in T1 with its access bit set while
// |T1| >= min(q+1, |B1|). Constructed by [NewCART]. See §4.7.
type CARTCache[Key comparable, Value any] struct {
	mu                  sync.Mutex
	t1, t2              fifo.Queue[Key]
	b1, b2              *keyset.KeySet[Key]
	entries             map[Key]*cartEntry[Value]
	capacity, cacheSize int
	// p is the target resident size of T1; q is the target size of B1.
	p, q int
	// ns/nl count Short/Long pages while they are resident (in T1 or
	// T2). A page demoted to a ghost list stops contributing to either
	// counter until it is either promoted back to resident (counted
	// again) or permanently evicted (never counted again); this keeps
	// ns+nl == |T1|+|T2| an invariant of the transition rules below.
	ns, nl int
	misses uint64
	loader Loader[Key, Value]
}

// MinimumCARTCapacity is the lowest capacity [NewCART] accepts.
const MinimumCARTCapacity = 2

// NewCART creates a [CARTCache] with the given capacity.
func NewCART[Key comparable, Value any](capacity int, loader Loader[Key, Value]) (*CARTCache[Key, Value], error) {
	if capacity < MinimumCARTCapacity {
		return nil, minCapacityError(capacity, MinimumCARTCapacity)
	}
	return &CARTCache[Key, Value]{
		b1:        keyset.New[Key](),
		b2:        keyset.New[Key](),
		entries:   make(map[Key]*cartEntry[Value], capacity),
		capacity:  capacity,
		cacheSize: capacity / 2,
		loader:    loader,
	}, nil
}

// Get returns the value for key, consulting and possibly mutating T1,
// T2, the histories, and the targets p and q as described in §4.7.
func (c *CARTCache[Key, Value]) Get(key Key) (Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && !e.isHistory {
		e.accessBit = true
		return e.value, nil
	}
	return c.handleMiss(key)
}

func (c *CARTCache[Key, Value]) resident() int { return c.t1.Len() + c.t2.Len() }

// handleMiss loads the value for a non-resident key and installs it.
// The loader runs before any state is mutated, so a failing loader
// leaves the cache exactly as it was.
func (c *CARTCache[Key, Value]) handleMiss(key Key) (Value, error) {
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
		c.entries[key] = &cartEntry[Value]{value: value, filter: filterShort}
		c.t1.PushBack(key)
		c.ns++
	case inB1:
		delta := max(1, c.ns/c.b1.Len())
		c.p = min(c.cacheSize, c.p+delta)
		c.b1.Erase(key)
		c.entries[key] = &cartEntry[Value]{value: value, filter: filterLong}
		c.t1.PushBack(key)
		c.nl++
	default: // inB2
		delta := max(1, c.nl/c.b2.Len())
		c.p = max(0, c.p-delta)
		c.b2.Erase(key)
		c.entries[key] = &cartEntry[Value]{value: value, filter: filterLong}
		c.t1.PushBack(key)
		c.nl++
		if c.t2.Len()+c.b2.Len()+c.t1.Len()-c.ns >= c.cacheSize {
			c.q = min(c.q+1, 2*c.cacheSize-c.t1.Len())
		}
	}
	c.checkInvariants()
	return value, nil
}

// checkInvariants verifies the size and range invariants of §3/§4.7
// that must hold after every miss. Compiled out unless built with the
// cachelab_debug tag.
func (c *CARTCache[Key, Value]) checkInvariants() {
	assert(c.resident() <= c.cacheSize, "cart: resident set exceeds cache_size")
	assert(len(c.entries) <= c.capacity, "cart: entry table exceeds capacity")
	assert(c.ns+c.nl == c.resident(), "cart: ns+nl diverged from resident count")
	assert(c.p >= 0 && c.p <= c.cacheSize, "cart: p out of [0,cache_size]")
}

// replace implements the two cycling phases and final demotion of
// §4.7.3, correcting the source's comparison-vs-assignment typo (the
// access bit is cleared, not compared, when a page cycles) and keeping
// the clarified remove-then-insert ordering the original spec prefers.
func (c *CARTCache[Key, Value]) replace() {
	for c.t2.Len() > 0 {
		head := c.t2.Front()
		e := c.entries[head]
		if !e.accessBit {
			break
		}
		c.t2.PopFront()
		e.accessBit = false
		c.t1.PushBack(head)
		if c.t2.Len()+c.b2.Len()+c.t1.Len()-c.ns >= c.cacheSize {
			c.q = min(c.q+1, 2*c.cacheSize-c.t1.Len())
		}
	}
	for c.t1.Len() > 0 {
		head := c.t1.Front()
		e := c.entries[head]
		if e.filter != filterLong && !e.accessBit {
			break
		}
		if e.accessBit {
			c.t1.PopFront()
			e.accessBit = false
			c.t1.PushBack(head)
			if c.t1.Len() >= min(c.q+1, c.b1.Len()) && e.filter == filterShort {
				e.filter = filterLong
				c.ns--
				c.nl++
			}
			continue
		}
		c.t1.PopFront()
		e.accessBit = false
		c.t2.PushBack(head)
		c.q = max(c.q-1, c.cacheSize-c.t1.Len())
	}
	if c.t1.Len() >= max(1, c.p) {
		head := c.t1.PopFront()
		c.entries[head].isHistory = true
		c.b1.Touch(head)
		c.ns--
	} else {
		head := c.t2.PopFront()
		c.entries[head].isHistory = true
		c.b2.Touch(head)
		c.nl--
	}
}

// trimHistories enforces the B1/B2 size balance after a fresh miss made
// room via replace. See §4.7.2.
func (c *CARTCache[Key, Value]) trimHistories() {
	switch {
	case c.b1.Len() > max(0, c.q) || c.b2.Len() == 0:
		delete(c.entries, c.b1.PopTail())
	case c.b1.Len()+c.b2.Len() == c.cacheSize+1:
		delete(c.entries, c.b2.PopTail())
	}
}

// Misses returns the number of true loads performed since construction.
func (c *CARTCache[Key, Value]) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// Size returns the number of tracked entries, resident plus ghost.
func (c *CARTCache[Key, Value]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Name returns "CART".
func (c *CARTCache[Key, Value]) Name() string { return "CART" }
