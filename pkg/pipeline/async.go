package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/toukei-tech/toukei/pkg/counter"
	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/stats"
	"github.com/toukei-tech/toukei/pkg/walker"
)

// channelFactor sizes the path channel relative to the worker count. The
// bound is what gives producers backpressure and caps the memory held by
// discovered-but-unprocessed paths.
const channelFactor = 2

// runAsync is the producer/consumer strategy: one producer per root path
// streams discovered files into a bounded channel, and a single consumer
// dispatches each path to a semaphore-limited counting goroutine that
// merges into a mutex-guarded report.
//
// Totals are identical to runSync for the same tree: merges happen in
// arbitrary completion order, which is safe because report merging is
// commutative per language.
func runAsync(registry *lang.Registry, opts Options) (*stats.Report, error) {
	log := opts.logger()
	workers := opts.workers()

	walk := walker.New(registry, opts.ExcludeFiles, opts.Types)
	paths := make(chan string, workers*channelFactor)

	var producers errgroup.Group

	for _, root := range opts.Paths {
		producers.Go(func() error {
			files, err := walk.Walk(root)
			if err != nil {
				return err
			}

			for _, file := range files {
				paths <- file
			}

			return nil
		})
	}

	// The channel closes once every producer has finished, which is what
	// terminates the consumer loop.
	producerDone := make(chan error, 1)

	go func() {
		producerDone <- producers.Wait()
		close(paths)
	}()

	var (
		mu     sync.Mutex
		tasks  sync.WaitGroup
		report = stats.NewReport()
	)

	sem := semaphore.NewWeighted(int64(workers))

	for path := range paths {
		// Acquire with a background context cannot fail; the run is not
		// cancellable once started.
		if err := sem.Acquire(context.Background(), 1); err != nil {
			break
		}

		tasks.Add(1)

		go func() {
			defer tasks.Done()
			defer sem.Release(1)

			count := counter.New(registry)

			stat, err := count.Count(path)
			if err != nil {
				logSkip(log, path, err)

				return
			}

			mu.Lock()
			report.Add(stat)
			mu.Unlock()
		}()
	}

	tasks.Wait()

	// A discovery failure aborts the run: the caller gets the error and
	// no report, matching the sync strategy.
	if err := <-producerDone; err != nil {
		return nil, err
	}

	return report, nil
}
