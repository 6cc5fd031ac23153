package cachelab_test

import (
	"errors"
	"testing"
)

// errBoom is a sentinel loader failure used by the LRU loader-error test
// to check §7's LoaderError contract.
var errBoom = errors.New("boom")

// identityLoader returns a [cachelab.Loader] that returns its key
// unchanged, the loader used throughout the end-to-end scenarios of
// the design (§8): loader(k) == k.
func identityLoader(t testing.TB) func(int) (int, error) {
	t.Helper()
	return func(k int) (int, error) { return k, nil }
}

func mustGet[Key comparable, Value comparable](tb testing.TB, cache interface {
	Get(Key) (Value, error)
}, key Key, want Value) Value {
	tb.Helper()
	got, err := cache.Get(key)
	if err != nil {
		tb.Fatalf("Get(%v) returned unexpected error: %v", key, err)
	}
	if got != want {
		tb.Fatalf("Get(%v): got %v, want %v", key, got, want)
	}
	return got
}

