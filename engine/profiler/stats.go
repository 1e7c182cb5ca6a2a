package profiler

import "runtime"

// Memory reports heap bytes in use and the cumulative allocation count.
func Memory() (inUse, allocs uint64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc, m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
