// Package bench drives an access-key sequence against either a
// [github.com/corwin-kz/go-cachelab.Cache] (read-through: Get loads on
// a miss by itself) or one of the hashicorp/golang-lru baselines
// (explicit Get-then-Add), and reports hit/miss counts and wall time
// through the same [Stats] shape, so cmd/cachebench and the root
// benchmark file can compare all of them side by side.
package bench

import "time"

// Accessor performs one keyed access against a cache and reports
// whether it was a hit.
type Accessor interface {
	Access(key int) (hit bool)
	Name() string
}

// Stats summarizes one run of [Run].
type Stats struct {
	Name     string
	Hits     int
	Misses   int
	Duration time.Duration
}

// HitRate returns the fraction of accesses that were hits, or 0 if no
// accesses were made.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Run feeds every key in sequence to cache in order and returns the
// resulting [Stats]. The wall clock starts after construction so
// warm-up costs done by the caller are excluded.
func Run(cache Accessor, sequence []int) Stats {
	stats := Stats{Name: cache.Name()}
	start := time.Now()
	for _, key := range sequence {
		if cache.Access(key) {
			stats.Hits++
		} else {
			stats.Misses++
		}
	}
	stats.Duration = time.Since(start)
	return stats
}
