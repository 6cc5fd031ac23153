package cachelab

import (
	"errors"
	"math/rand"
	"testing"
)

// As with car_test.go, these run in package cachelab so they can
// inspect T1/T2/B1/B2/ns/nl/p/q directly.

func TestCARTInvalidCapacity(t *testing.T) {
	if c, err := NewCART[int, int](1, identityLoaderFunc); c != nil || err == nil {
		t.Fatalf("NewCART(1) should fail below MinimumCARTCapacity, got cache=%v err=%v", c, err)
	}
}

// TestCARTFreshMissesAreShort checks the easy, eviction-free portion
// of scenario S5 (capacity 4, cache_size 2): every fresh key starts
// life in T1 with filter_bit=Short, and a second get on the same key
// is a hit that does not touch its filter bit.
func TestCARTFreshMissesAreShort(t *testing.T) {
	c, err := NewCART[int, int](4, identityLoaderFunc)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{1, 1, 2} {
		if _, err := c.Get(k); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := c.Misses(), uint64(2); got != want {
		t.Fatalf("Misses() = %d, want %d", got, want)
	}
	for _, k := range []int{1, 2} {
		e, ok := c.entries[k]
		if !ok || e.isHistory {
			t.Fatalf("key %d should be resident, entry=%+v ok=%v", k, e, ok)
		}
		if e.filter != filterShort {
			t.Fatalf("key %d should start Short, got filter=%v", k, e.filter)
		}
	}
	if got, want := c.ns, 2; got != want {
		t.Fatalf("ns = %d, want %d", got, want)
	}
	if got, want := c.nl, 0; got != want {
		t.Fatalf("nl = %d, want %d", got, want)
	}
}

// TestCARTLoaderErrorLeavesStateUntouched mirrors the CAR test: a
// failing loader must not mutate p, q, ns, nl, the histories, or the
// entry table.
func TestCARTLoaderErrorLeavesStateUntouched(t *testing.T) {
	boom := errors.New("boom")
	c, err := NewCART[int, int](4, func(k int) (int, error) {
		if k == 13 {
			return 0, boom
		}
		return k, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{1, 2, 3} {
		if _, err := c.Get(k); err != nil {
			t.Fatal(err)
		}
	}
	pBefore, qBefore, nsBefore, nlBefore := c.p, c.q, c.ns, c.nl
	missesBefore, sizeBefore := c.Misses(), c.Size()
	if _, err := c.Get(13); err != boom {
		t.Fatalf("Get(13) error = %v, want %v", err, boom)
	}
	if c.p != pBefore || c.q != qBefore || c.ns != nsBefore || c.nl != nlBefore ||
		c.Misses() != missesBefore || c.Size() != sizeBefore {
		t.Fatalf("state changed after failed load: p=%d/%d q=%d/%d ns=%d/%d nl=%d/%d misses=%d/%d size=%d/%d",
			pBefore, c.p, qBefore, c.q, nsBefore, c.ns, nlBefore, c.nl,
			missesBefore, c.Misses(), sizeBefore, c.Size())
	}
	if _, ok := c.entries[13]; ok {
		t.Fatal("key 13 should not have been installed after a loader error")
	}
}

// TestCARTInvariants runs a long pseudo-random access trace and checks
// the structural invariants of §4.7 after every operation: ns and nl
// only ever count resident pages, residents never exceed cache_size,
// and the entry table never exceeds capacity.
func TestCARTInvariants(t *testing.T) {
	const capacity = 16
	c, err := NewCART[int, int](capacity, identityLoaderFunc)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		key := rng.Intn(capacity * 2)
		if _, err := c.Get(key); err != nil {
			t.Fatalf("Get(%d): %v", key, err)
		}
		resident := c.t1.Len() + c.t2.Len()
		if resident > c.cacheSize {
			t.Fatalf("iteration %d: resident = %d exceeds cache_size %d", i, resident, c.cacheSize)
		}
		if got := c.Size(); got > c.capacity {
			t.Fatalf("iteration %d: Size() = %d exceeds capacity %d", i, got, c.capacity)
		}
		if got, want := c.ns+c.nl, resident; got != want {
			t.Fatalf("iteration %d: ns+nl = %d, resident = %d", i, got, want)
		}
		if c.ns < 0 || c.nl < 0 {
			t.Fatalf("iteration %d: negative counters ns=%d nl=%d", i, c.ns, c.nl)
		}
		if c.p < 0 || c.p > c.cacheSize {
			t.Fatalf("iteration %d: p = %d out of [0,%d]", i, c.p, c.cacheSize)
		}
	}
}
