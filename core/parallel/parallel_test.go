package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name  string
		nJobs int
		items int
		want  int
	}{
		{name: "explicit count", nJobs: 4, items: 100, want: 4},
		{name: "capped by items", nJobs: 8, items: 3, want: 3},
		{name: "all cores", nJobs: -1, items: 1 << 20, want: runtime.NumCPU()},
		{name: "zero means all cores", nJobs: 0, items: 1 << 20, want: runtime.NumCPU()},
		{name: "single item", nJobs: -1, items: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWorkers(tt.nJobs, tt.items); got != tt.want {
				t.Errorf("ResolveWorkers(%d, %d) = %d, want %d", tt.nJobs, tt.items, got, tt.want)
			}
		})
	}
}

func TestParallelizeCoversAllItems(t *testing.T) {
	const items = 1000
	seen := make([]int32, items)

	Parallelize(items, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("item %d processed %d times, want exactly once", i, count)
		}
	}
}

func TestParallelizeEmpty(t *testing.T) {
	called := false
	Parallelize(0, -1, func(start, end int) { called = true })
	if called {
		t.Error("fn called for zero items")
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, -1, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path made %d calls, want 1", calls)
	}
}
