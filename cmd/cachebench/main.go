// Command cachebench replays or synthesizes an access trace against
// one or more cache policies from github.com/corwin-kz/go-cachelab,
// plus the hashicorp/golang-lru baselines, and reports hit rate, miss
// count, and wall time for each.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "cachebench",
		Short: "Replay or synthesize an access trace against cachelab's policies",
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newRunCmd())
	return &cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
