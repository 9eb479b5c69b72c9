package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		workers int
	}{
		{name: "more items than workers", items: 1000, workers: 4},
		{name: "fewer items than workers", items: 3, workers: 16},
		{name: "single worker", items: 57, workers: 1},
		{name: "default workers", items: 129, workers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits := make([]int32, tt.items)
			Parallelize(tt.items, tt.workers, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&visits[i], 1)
				}
			})

			for i, v := range visits {
				if v != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, v)
				}
			}
		})
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, 4, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn should not be called for an empty range")
	}
}

func TestParallelizeWithThreshold_SequentialBelowThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, 100, 4, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path made %d calls, want 1", calls)
	}
}

func TestParallelizeWithThreshold_ParallelAboveThreshold(t *testing.T) {
	visits := make([]int32, 500)
	ParallelizeWithThreshold(500, 100, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})
	for i, v := range visits {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, v)
		}
	}
}
