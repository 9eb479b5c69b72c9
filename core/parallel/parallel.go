// Package parallel provides chunked fan-out of an index range across
// goroutines. The solver uses it to spread independent per-series work over
// CPU cores; results land in disjoint output slots so no synchronization
// beyond the final wait is needed.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) into contiguous chunks and runs fn(start,
// end) for each chunk on its own goroutine, waiting for all of them.
// workers caps the number of goroutines; zero or negative means one per CPU
// core. The chunks partition the range exactly: every index is visited once.
func Parallelize(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	// Ceiling division so the last chunk is never empty while others overflow.
	chunkSize := (items + workers - 1) / workers

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
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

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items does not exceed threshold, and fans out via Parallelize otherwise.
// Small batches stay on the calling goroutine where the fan-out overhead
// would dominate.
func ParallelizeWithThreshold(items, threshold, workers int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}

	Parallelize(items, workers, fn)
}
