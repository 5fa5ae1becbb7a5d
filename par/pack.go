package par

// Pack gathers the indices i for which flags[i] is true, preserving
// ascending order. len(result) == popcount(flags).
func Pack(flags []bool) []int32 {
	return DefaultPool.Pack(flags)
}

// Pack is the *Pool-bound form of the package-level Pack.
func (p *Pool) Pack(flags []bool) []int32 {
	n := len(flags)
	asInt := make([]int64, n)
	for i := 0; i < n; i++ {
		if flags[i] {
			asInt[i] = 1
		}
	}
	offsets, total := p.PrefixSum(asInt)

	out := make([]int32, total)
	p.For(n, func(i int) {
		if flags[i] {
			out[offsets[i]] = int32(i)
		}
	})
	return out
}

// PackBy gathers a[i] for which flags[i] is true, preserving ascending
// order of i, using the package-level DefaultPool. len(a) must equal
// len(flags).
func PackBy[T any](a []T, flags []bool) []T {
	return PackByPool(DefaultPool, a, flags)
}

// PackByPool is the Pool-bound form of PackBy. Go methods cannot carry
// their own type parameters, so this takes the pool explicitly instead of
// being a method on *Pool.
func PackByPool[T any](p *Pool, a []T, flags []bool) []T {
	n := len(flags)
	asInt := make([]int64, n)
	for i := 0; i < n; i++ {
		if flags[i] {
			asInt[i] = 1
		}
	}
	offsets, total := p.PrefixSum(asInt)

	out := make([]T, total)
	p.For(n, func(i int) {
		if flags[i] {
			out[offsets[i]] = a[i]
		}
	})
	return out
}
