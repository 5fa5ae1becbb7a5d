package edgemap

import (
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/graph"
	"github.com/katalvlaran/ligra/par"
)

// Map applies uf across the edges reachable from frontier f, choosing the
// sparse (push) or dense (pull) executor based on the frontier's outgoing
// edge weight relative to threshold: E_out(F)+|F| > threshold selects
// dense, otherwise sparse. A negative threshold means "use g.M()/20".
// FlagDenseForward only selects which dense executor (dense-forward in
// place of plain dense-pull) Map uses once it has already chosen dense;
// it never overrides a sparse decision. If nextBitmap is non-nil, the
// engine writes the output frontier's membership into it and returns a
// dense Subset wrapping it. Without nextBitmap, a sparse round returns a
// sparse Subset and a dense round returns a dense Subset over a bitmap
// the dense executor allocates itself.
func Map(g *graph.Graph, f *frontier.Subset, nextBitmap []bool, uf UpdateFunc, threshold int64, flags Flags) *frontier.Subset {
	if threshold < 0 {
		threshold = g.M() / 20
	}

	if f.IsEmpty() {
		return emptyOutput(g.N(), nextBitmap, flags)
	}

	eOut := outEdgeWeight(g, f)
	if eOut+int64(f.Size()) > threshold {
		if flags&FlagDenseForward != 0 {
			return denseForward(g, f, nextBitmap, uf, flags)
		}
		return denseMap(g, f, nextBitmap, uf, flags)
	}
	out := sparseMap(g, f, uf, flags)
	if nextBitmap != nil && flags&FlagNoOutput == 0 {
		for _, d := range out.ToSparse() {
			nextBitmap[d] = true
		}
		return frontier.FromDense(g.N(), nextBitmap)
	}
	return out
}

func emptyOutput(n int, nextBitmap []bool, flags Flags) *frontier.Subset {
	if flags&FlagNoOutput != 0 {
		return frontier.FromSparse(n, nil)
	}
	if nextBitmap != nil {
		return frontier.FromDense(n, nextBitmap)
	}
	return frontier.FromSparse(n, nil)
}

// outEdgeWeight computes E_out(F) = sum of out-degrees of frontier members.
func outEdgeWeight(g *graph.Graph, f *frontier.Subset) int64 {
	if f.IsSparse() {
		ids := f.ToSparse()
		degs := make([]int64, len(ids))
		par.For(len(ids), func(i int) { degs[i] = int64(g.OutDegree(ids[i])) })
		return par.Reduce(degs, int64(0), sumInt64)
	}
	bits := f.ToDense()
	degs := make([]int64, len(bits))
	par.For(len(bits), func(i int) {
		if bits[i] {
			degs[i] = int64(g.OutDegree(uint32(i)))
		}
	})
	return par.Reduce(degs, int64(0), sumInt64)
}

func sumInt64(a, b int64) int64 { return a + b }

// sparseMap is the push executor: iterate the frontier's out-edges in
// parallel, applying UpdateAtomic since multiple source vertices may race
// to claim the same destination.
func sparseMap(g *graph.Graph, f *frontier.Subset, uf UpdateFunc, flags Flags) *frontier.Subset {
	ids := f.ToSparse()

	if flags&FlagNoOutput != 0 {
		par.For(len(ids), func(i int) {
			s := ids[i]
			g.ForEachOutNeighbor(s, func(d uint32) {
				if uf.Cond(d) {
					uf.UpdateAtomic(s, d)
				}
			})
		})
		return frontier.FromSparse(g.N(), nil)
	}

	degs := make([]int64, len(ids))
	par.For(len(ids), func(i int) { degs[i] = int64(g.OutDegree(ids[i])) })
	offsets, total := par.PrefixSum(degs)

	included := make([]bool, total)
	dests := make([]uint32, total)
	par.For(len(ids), func(i int) {
		s := ids[i]
		base := offsets[i]
		j := int64(0)
		g.ForEachOutNeighbor(s, func(d uint32) {
			idx := base + j
			j++
			if uf.Cond(d) && uf.UpdateAtomic(s, d) {
				included[idx] = true
				dests[idx] = d
			}
		})
	})

	out := par.PackBy(dests, included)
	if flags&FlagRemoveDuplicates != 0 {
		out = dedupPreserveOrder(g.N(), out)
	}
	return frontier.FromSparse(g.N(), out)
}

// denseMap is the pull executor: iterate every destination in parallel; a
// destination is exclusively owned by the worker processing it, so its
// in-neighbors are scanned sequentially with the non-atomic Update.
func denseMap(g *graph.Graph, f *frontier.Subset, nextBitmap []bool, uf UpdateFunc, flags Flags) *frontier.Subset {
	bits := f.ToDense()
	n := g.N()

	var out []bool
	if flags&FlagNoOutput == 0 {
		out = nextBitmap
		if out == nil {
			out = make([]bool, n)
		}
	}

	par.For(n, func(i int) {
		d := uint32(i)
		if !uf.Cond(d) {
			return
		}
		claimed := false
		g.ForEachInNeighbor(d, func(s uint32) {
			if claimed {
				return
			}
			if bits[s] && uf.Update(s, d) {
				claimed = true
			}
		})
		if claimed && out != nil {
			out[d] = true
		}
	})

	if flags&FlagNoOutput != 0 {
		return frontier.FromSparse(n, nil)
	}
	return frontier.FromDense(n, out)
}

// denseForward partitions the destination id space into worker-count
// shards and, within each shard, sequentially scans every frontier
// vertex's out-edges for destinations landing in that shard — giving
// single-writer-per-destination without atomics.
func denseForward(g *graph.Graph, f *frontier.Subset, nextBitmap []bool, uf UpdateFunc, flags Flags) *frontier.Subset {
	n := g.N()
	ids := f.ToSparse()

	var out []bool
	if flags&FlagNoOutput == 0 {
		out = nextBitmap
		if out == nil {
			out = make([]bool, n)
		}
	}

	workers := par.DefaultPool.Workers()
	if workers < 1 {
		workers = 1
	}
	shardSize := (n + workers - 1) / workers
	if shardSize < 1 {
		shardSize = 1
	}
	numShards := (n + shardSize - 1) / shardSize

	par.For(numShards, func(shard int) {
		lo := shard * shardSize
		hi := lo + shardSize
		if hi > n {
			hi = n
		}
		for _, s := range ids {
			g.ForEachOutNeighbor(s, func(d uint32) {
				if int(d) < lo || int(d) >= hi {
					return
				}
				if uf.Cond(d) && uf.Update(s, d) && out != nil {
					out[d] = true
				}
			})
		}
	})

	if flags&FlagNoOutput != 0 {
		return frontier.FromSparse(n, nil)
	}
	return frontier.FromDense(n, out)
}

func dedupPreserveOrder(n int, ids []uint32) []uint32 {
	seen := make([]bool, n)
	out := make([]uint32, 0, len(ids))
	for _, d := range ids {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
