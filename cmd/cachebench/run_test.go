package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildAccessorsKnownPolicies(t *testing.T) {
	accessors, err := buildAccessors([]string{"lru", "car", "cart", "hashicorp-lru", "hashicorp-arc"}, 8)
	require.NoError(t, err)
	require.Len(t, accessors, 5)
	names := make([]string, len(accessors))
	for i, a := range accessors {
		names[i] = a.Name()
	}
	require.Equal(t, []string{"LRU", "CAR", "CART", "hashicorp/LRU", "hashicorp/ARC"}, names)
}

func TestBuildAccessorsUnknownPolicy(t *testing.T) {
	_, err := buildAccessors([]string{"bogus"}, 8)
	require.Error(t, err)
}

func TestLoadSequenceSynthetic(t *testing.T) {
	opts := runOptions{pattern: "sequential", upperBound: 4, length: 10}
	seq, err := loadSequence(opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1}, seq)
}

func TestLoadSequenceUnknownPattern(t *testing.T) {
	opts := runOptions{pattern: "bogus"}
	_, err := loadSequence(opts)
	require.Error(t, err)
}
