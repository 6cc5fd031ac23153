package bench

import (
	lruarc "github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	cachelab "github.com/corwin-kz/go-cachelab"
)

// intPolicyAccessor adapts an int-keyed [cachelab.Cache] to [Accessor]
// by reading its miss counter around each Get: a read-through cache
// has no separate "was it a hit" return value, so a hit is inferred
// from Misses() not having grown.
type intPolicyAccessor struct {
	name  string
	cache cachelab.Cache[int, int]
}

// NewIntPolicyAccessor wraps an int-keyed cachelab cache for [Run].
func NewIntPolicyAccessor(cache cachelab.Cache[int, int]) Accessor {
	return &intPolicyAccessor{name: cache.Name(), cache: cache}
}

func (a *intPolicyAccessor) Name() string { return a.name }

func (a *intPolicyAccessor) Access(key int) bool {
	before := a.cache.Misses()
	if _, err := a.cache.Get(key); err != nil {
		// The identity loader used for benchmarking never errors.
		panic(err)
	}
	hit := a.cache.Misses() == before
	return hit
}

// lruAccessor adapts a hashicorp/golang-lru/v2 Cache, which exposes
// explicit Get/Add rather than a read-through Get, to [Accessor].
type lruAccessor struct {
	cache *lru.Cache[int, int]
}

// NewLRUBaselineAccessor wraps an hashicorp LRU cache of the given
// size for [Run]. Panics if size is invalid, matching the constructor
// contract of the wrapped library.
func NewLRUBaselineAccessor(size int) Accessor {
	cache, err := lru.New[int, int](size)
	if err != nil {
		panic(err)
	}
	return &lruAccessor{cache: cache}
}

func (a *lruAccessor) Name() string { return "hashicorp/LRU" }

func (a *lruAccessor) Access(key int) bool {
	if _, ok := a.cache.Get(key); ok {
		return true
	}
	a.cache.Add(key, key)
	return false
}

// arcAccessor adapts a hashicorp/golang-lru/arc/v2 ARCCache.
type arcAccessor struct {
	cache *lruarc.ARCCache[int, int]
}

// NewARCBaselineAccessor wraps an hashicorp ARC cache of the given
// size for [Run]. Panics if size is invalid, matching the constructor
// contract of the wrapped library.
func NewARCBaselineAccessor(size int) Accessor {
	cache, err := lruarc.NewARC[int, int](size)
	if err != nil {
		panic(err)
	}
	return &arcAccessor{cache: cache}
}

func (a *arcAccessor) Name() string { return "hashicorp/ARC" }

func (a *arcAccessor) Access(key int) bool {
	if _, ok := a.cache.Get(key); ok {
		return true
	}
	a.cache.Add(key, key)
	return false
}
