package par

// PrefixSum computes the exclusive prefix sum of a: the returned sum slice
// has the same length as a, sum[0] == 0, and sum[i] == a[0]+...+a[i-1].
// total is the sum of all of a (equivalently, what sum[len(a)] would be).
//
// The computation is a two-pass scan over worker-count chunks: each
// chunk's local total is computed, the (small) per-chunk totals are
// scanned, and the resulting chunk offsets are added back into each chunk.
// Both per-chunk passes go through p.For, which runs them one after
// another on the calling goroutine whenever the chunk count is at most
// SequentialThreshold, so with up to SequentialThreshold workers the scan
// does not run in parallel.
func PrefixSum(a []int64) (sum []int64, total int64) {
	return DefaultPool.PrefixSum(a)
}

// PrefixSum is the *Pool-bound form of the package-level PrefixSum.
func (p *Pool) PrefixSum(a []int64) (sum []int64, total int64) {
	n := len(a)
	sum = make([]int64, n)
	if n == 0 {
		return sum, 0
	}

	ranges := chunks(n, p.workers)
	if len(ranges) <= 1 {
		var running int64
		for i, v := range a {
			sum[i] = running
			running += v
		}
		return sum, running
	}

	localTotals := make([]int64, len(ranges))
	p.For(len(ranges), func(c int) {
		lo, hi := ranges[c][0], ranges[c][1]
		var s int64
		for i := lo; i < hi; i++ {
			s += a[i]
		}
		localTotals[c] = s
	})

	chunkOffsets := make([]int64, len(ranges))
	var running int64
	for c, t := range localTotals {
		chunkOffsets[c] = running
		running += t
	}

	p.For(len(ranges), func(c int) {
		lo, hi := ranges[c][0], ranges[c][1]
		offset := chunkOffsets[c]
		for i := lo; i < hi; i++ {
			sum[i] = offset
			offset += a[i]
		}
	})

	return sum, running
}
