package par

import (
	"runtime"
	"sync"
)

// SequentialThreshold is the largest range size that For and the other
// primitives in this package will run on the calling goroutine instead of
// fanning out to the pool. Below this size, fork/join overhead dominates
// the work itself.
const SequentialThreshold = 2048

// Pool bounds the concurrency used by For, PrefixSum, Pack and Reduce.
// A Pool is safe for concurrent use by multiple goroutines; it holds no
// mutable state beyond the worker count it was built with.
type Pool struct {
	workers int
}

// NewPool returns a Pool with the given worker count. A non-positive count
// is replaced by runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers reports the pool's configured concurrency.
func (p *Pool) Workers() int {
	return p.workers
}

// DefaultPool is the package-level pool used by the free functions For,
// PrefixSum, Pack, PackBy and Reduce. Applications that want a different
// concurrency (e.g. to pin an engine run to fewer cores) construct their
// own *Pool and call its methods directly instead.
var DefaultPool = NewPool(0)

// For applies f(i) for every i in [0, n) in parallel and returns only once
// every call has completed. Iteration order and interleaving are
// unspecified; f must either be race-free across calls or use the atomic
// helpers in this package.
func For(n int, f func(i int)) {
	DefaultPool.For(n, f)
}

// For applies f(i) for every i in [0, n) using p's worker count.
func (p *Pool) For(n int, f func(i int)) {
	if n <= 0 {
		return
	}
	if n <= SequentialThreshold || p.workers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// chunks splits [0, n) into up to workers contiguous, non-empty ranges and
// returns their bounds. It is shared by PrefixSum (and so Pack and PackBy)
// and Reduce.
func chunks(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}
