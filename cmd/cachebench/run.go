package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cachelab "github.com/corwin-kz/go-cachelab"
	"github.com/corwin-kz/go-cachelab/internal/bench"
	"github.com/corwin-kz/go-cachelab/trace"
)

type runOptions struct {
	file       string
	pattern    string
	capacity   int
	length     int
	upperBound int
	skew       float64
	bias       float64
	hotRatio   float64
	policies   []string
	verbose    bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{
		pattern:    "uniform",
		capacity:   1024,
		length:     1 << 16,
		upperBound: 4096,
		skew:       1.2,
		bias:       1.0,
		hotRatio:   0.9,
		policies:   []string{"lru", "car", "cart", "hashicorp-lru", "hashicorp-arc"},
	}
	cmd := cobra.Command{
		Use:   "run",
		Short: "Run a trace (file-based or synthetic) against the configured policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts, newLogger(opts.verbose))
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "path to a whitespace-separated trace file; overrides --pattern")
	flags.StringVar(&opts.pattern, "pattern", opts.pattern, "synthetic pattern: sequential, looping, zipf, uniform")
	flags.IntVar(&opts.capacity, "capacity", opts.capacity, "cache capacity")
	flags.IntVar(&opts.length, "length", opts.length, "synthetic trace length")
	flags.IntVar(&opts.upperBound, "universe", opts.upperBound, "key universe size for synthetic patterns")
	flags.Float64Var(&opts.skew, "skew", opts.skew, "zipf skew parameter (s)")
	flags.Float64Var(&opts.bias, "bias", opts.bias, "zipf bias parameter (v)")
	flags.Float64Var(&opts.hotRatio, "hot-ratio", opts.hotRatio, "looping pattern's probability of a hot-set access")
	flags.StringSliceVar(&opts.policies, "policies", opts.policies, "comma-separated policies to run: lru,car,cart,hashicorp-lru,hashicorp-arc")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return &cmd
}

func runBenchmark(opts runOptions, logger *slog.Logger) error {
	sequence, err := loadSequence(opts)
	if err != nil {
		return err
	}
	logger.Info("loaded trace", "keys", len(sequence), "capacity", opts.capacity)
	accessors, err := buildAccessors(opts.policies, opts.capacity)
	if err != nil {
		return err
	}
	for _, accessor := range accessors {
		stats := bench.Run(accessor, sequence)
		fmt.Printf("%-16s hits=%-8d misses=%-8d hit_rate=%6.2f%% elapsed=%s\n",
			stats.Name, stats.Hits, stats.Misses, stats.HitRate()*100, stats.Duration)
	}
	return nil
}

func loadSequence(opts runOptions) ([]int, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("cachebench: opening trace file: %w", err)
		}
		defer f.Close()
		return trace.ReadFile(f)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	switch strings.ToLower(opts.pattern) {
	case "sequential":
		return trace.Sequential(opts.upperBound, opts.length), nil
	case "looping":
		return trace.Looping(rng, opts.capacity, opts.upperBound, opts.length, opts.hotRatio), nil
	case "zipf":
		return trace.Zipf(rng, opts.upperBound, opts.length, opts.skew, opts.bias), nil
	case "uniform":
		return trace.Uniform(rng, opts.upperBound, opts.length), nil
	default:
		return nil, fmt.Errorf("cachebench: unknown pattern %q", opts.pattern)
	}
}

func buildAccessors(names []string, capacity int) ([]bench.Accessor, error) {
	identity := func(k int) (int, error) { return k, nil }
	accessors := make([]bench.Accessor, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(name) {
		case "lru":
			cache, err := cachelab.NewLRU[int, int](capacity, identity)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, bench.NewIntPolicyAccessor(cache))
		case "car":
			cache, err := cachelab.NewCAR[int, int](max(capacity, cachelab.MinimumCARCapacity), identity)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, bench.NewIntPolicyAccessor(cache))
		case "cart":
			cache, err := cachelab.NewCART[int, int](max(capacity, cachelab.MinimumCARTCapacity), identity)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, bench.NewIntPolicyAccessor(cache))
		case "hashicorp-lru":
			accessors = append(accessors, bench.NewLRUBaselineAccessor(capacity))
		case "hashicorp-arc":
			accessors = append(accessors, bench.NewARCBaselineAccessor(capacity))
		default:
			return nil, fmt.Errorf("cachebench: unknown policy %q", name)
		}
	}
	return accessors, nil
}
