// Package trace produces and reads key-access sequences for driving a
// [github.com/corwin-kz/go-cachelab.Cache] from the command line or a
// benchmark: a file of whitespace-separated integers, or one of a small
// set of synthetic generators covering common access patterns (sequential
// scan, a hot/cold loop, Zipf, and uniform random).
package trace

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
)

// ReadFile parses r as whitespace-separated unsigned integers, one key
// per token, returning them in file order. Blank lines and extra
// whitespace are ignored; any non-numeric token is a format error.
func ReadFile(r io.Reader) ([]int, error) {
	var (
		keys    []int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		key, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("trace: invalid key %q: %w", scanner.Text(), err)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading trace: %w", err)
	}
	return keys, nil
}

// Sequential returns length keys cycling 0..universe-1. Under LRU every
// access misses once universe exceeds the cache's capacity.
func Sequential(universe, length int) []int {
	seq := make([]int, length)
	for i := range seq {
		seq[i] = i % universe
	}
	return seq
}

// Looping returns length keys drawn with probability hotRatio from a
// "hot" set of the first max(1,hotSize) integers, and otherwise from a
// disjoint "cold" set above it — a synthetic working set that loops
// back on itself often enough for frequency-aware policies to show
// their advantage over plain recency.
func Looping(rng *rand.Rand, hotSize, universe, length int, hotRatio float64) []int {
	var (
		seq      = make([]int, length)
		hot      = max(1, hotSize)
		coldSize = max(1, universe-hot)
	)
	for i := range seq {
		if rng.Float64() < hotRatio {
			seq[i] = rng.Intn(hot)
		} else {
			seq[i] = hot + rng.Intn(coldSize)
		}
	}
	return seq
}

// Zipf returns length keys drawn from a Zipf-Mandelbrot distribution
// over [0,universe), using the stdlib's rand.Zipf generator directly
// (skew and bias are its s and v parameters).
func Zipf(rng *rand.Rand, universe, length int, skew, bias float64) []int {
	var (
		seq  = make([]int, length)
		imax = uint64(max(universe, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = int(zipf.Uint64())
	}
	return seq
}

// Uniform returns length keys drawn uniformly from [0,upperBound).
func Uniform(rng *rand.Rand, upperBound, length int) []int {
	seq := make([]int, length)
	for i := range seq {
		seq[i] = rng.Intn(upperBound)
	}
	return seq
}
