// Package pipeline fans per-file counting out over a discovered file set
// and merges the results into one report. Two execution strategies share
// the same discovery, counting and merge logic and produce identical
// totals for the same input tree.
package pipeline

import (
	"log/slog"
	"runtime"

	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/stats"
)

// Mode selects the execution strategy.
type Mode int

// Execution strategies.
const (
	// ModeSync collects all paths up front and processes them on a fixed
	// worker pool, merging single-threaded.
	ModeSync Mode = iota
	// ModeAsync streams paths from per-root producers through a bounded
	// channel into semaphore-limited counting goroutines.
	ModeAsync
)

// Options configures one pipeline run.
type Options struct {
	// Paths are the root paths to scan.
	Paths []string
	// Types enables languages by name (case-insensitive); empty enables all.
	Types []string
	// ExcludeFiles holds exclusion patterns (fragments, substrings, globs).
	ExcludeFiles []string
	// Workers bounds concurrent file processing; 0 means host parallelism.
	Workers int
	// Logger receives skip warnings; nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// Run executes one scan under the chosen strategy and returns the merged
// report. The error policy is identical in both modes: binary files and
// per-file counting failures are logged and skipped, discovery failures
// abort the run with no report. Runs are not cancellable; once started
// they proceed to completion or to the first discovery error.
func Run(mode Mode, registry *lang.Registry, opts Options) (*stats.Report, error) {
	if mode == ModeAsync {
		return runAsync(registry, opts)
	}

	return runSync(registry, opts)
}
