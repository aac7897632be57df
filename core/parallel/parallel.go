// Package parallel provides the worker-count resolution and chunked
// parallel-map helpers shared by grid search and parallel-fitting
// estimators.
package parallel

import (
	"runtime"
	"sync"
)

// ResolveWorkers maps an n_jobs-style parallelism hint to a concrete worker
// count. nJobs <= 0 means use all available cores. The result never exceeds
// items since extra workers would sit idle.
func ResolveWorkers(nJobs, items int) int {
	workers := nJobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if items > 0 && workers > items {
		workers = items
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Parallelize splits items into contiguous chunks and runs fn on each chunk
// concurrently, using up to nJobs workers (nJobs <= 0 means all cores). It
// blocks until every chunk has been processed.
func Parallelize(items, nJobs int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := ResolveWorkers(nJobs, items)
	if numWorkers == 1 {
		fn(0, items)
		return
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, avoiding goroutine overhead on small inputs.
func ParallelizeWithThreshold(items, nJobs, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, nJobs, fn)
}
