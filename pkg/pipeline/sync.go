package pipeline

import (
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/toukei-tech/toukei/pkg/counter"
	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/stats"
	"github.com/toukei-tech/toukei/pkg/walker"
)

// fileResult pairs one file's outcome with its submission slot so the
// drain below observes results in submission order, not completion order.
type fileResult struct {
	stat stats.FileStat
	err  error
}

// runSync is the worker-pool strategy: discovery runs first and collects
// every path, a bounded group counts them in parallel, and a single
// consumer drains results into the report. No shared mutable state exists
// while files are being counted, so the report needs no lock.
func runSync(registry *lang.Registry, opts Options) (*stats.Report, error) {
	log := opts.logger()

	walk := walker.New(registry, opts.ExcludeFiles, opts.Types)

	var paths []string

	for _, root := range opts.Paths {
		files, err := walk.Walk(root)
		if err != nil {
			return nil, err
		}

		paths = append(paths, files...)
	}

	results := make([]fileResult, len(paths))

	var group errgroup.Group

	group.SetLimit(opts.workers())

	for i, path := range paths {
		group.Go(func() error {
			// Each task owns an independent counter and fresh per-file
			// lexing state.
			count := counter.New(registry)
			stat, err := count.Count(path)
			results[i] = fileResult{stat: stat, err: err}

			return nil
		})
	}

	// Tasks never return errors; per-file failures travel in results.
	_ = group.Wait()

	report := stats.NewReport()

	for i, res := range results {
		if res.err != nil {
			logSkip(log, paths[i], res.err)

			continue
		}

		report.Add(res.stat)
	}

	return report, nil
}

// logSkip applies the unified per-file error policy: binary files and
// counting failures are recorded and excluded from the report.
func logSkip(log *slog.Logger, path string, err error) {
	if errors.Is(err, counter.ErrBinary) {
		log.Warn("skipping binary file", "path", path)

		return
	}

	log.Warn("skipping file", "path", path, "error", err)
}
