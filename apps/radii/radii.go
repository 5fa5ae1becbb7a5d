// Package radii estimates, for every vertex, the longest shortest-path
// distance reaching it from a sample of source vertices via a 64-bit
// bitset trick, ground on original_source/apps/Radii.C.
package radii

import (
	"sync/atomic"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/edgemap"
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/graph"
	"github.com/katalvlaran/ligra/options"
	"github.com/katalvlaran/ligra/par"
	"github.com/katalvlaran/ligra/perfcount"
	"github.com/katalvlaran/ligra/vertexmap"
)

// maxSources bounds the sample to 64 source vertices, one per bit of the
// uint64 visited bitset — Radii.C's "long sampleSize = min(n, 64)".
const maxSources = 64

// noRadius marks a vertex not yet reached by any sampled source.
const noRadius = -1

// Result is the output of a Radii run.
type Result struct {
	// Radii[v] is the last round in which v's visited bitset changed,
	// i.e. the distance from the farthest sampled source that reaches v;
	// 0 for a sampled source no other source reaches, noRadius if no
	// sampled source reaches v.
	Radii []int32
	// Iterations is the number of rounds until the frontier emptied.
	Iterations int
}

// updateFunc is Radii_F: OR the source's visited-bitset into the
// destination's NextVisited, and claim a first-touch radius update.
type updateFunc struct {
	edgemap.CondTrue
	visited     []uint64
	nextVisited []uint64
	radii       []int32
	round       int32
}

func (f *updateFunc) Update(s, d uint32) bool {
	toWrite := f.visited[d] | f.visited[s]
	if f.visited[d] != toWrite {
		f.nextVisited[d] |= toWrite
		if f.radii[d] != f.round {
			f.radii[d] = f.round
			return true
		}
	}
	return false
}

func (f *updateFunc) UpdateAtomic(s, d uint32) bool {
	toWrite := f.visited[d] | f.visited[s]
	if f.visited[d] != toWrite {
		par.WriteOrUint64(&f.nextVisited[d], toWrite)
		claimed := false
		if atomic.LoadInt32((*int32)(&f.radii[d])) != f.round {
			claimed = atomic.CompareAndSwapInt32((*int32)(&f.radii[d]), f.radii[d], f.round)
		}
		return claimed
	}
	return false
}

// Compute samples up to maxSources source vertices (every vertex when n <=
// maxSources, otherwise hash-selected, per original_source/apps/Radii.C's
// "hashInt(i) % n") and iteratively expands their visited bitsets,
// recording for each vertex the last round in which its bitset changed.
func Compute(g *graph.Graph, opts *options.Options, newIDs []uint32, logger apps.Logger, counters perfcount.Counters) (*Result, error) {
	events := opts.GetOptionValue("-e", "cycles:u")
	_, inputFile := opts.IOFileNames()

	n := g.N()
	preprocessed := len(newIDs) >= 2 && newIDs[0] != newIDs[1]

	radii := make([]int32, n)
	visited := make([]uint64, n)
	nextVisited := make([]uint64, n)
	par.For(n, func(i int) { radii[i] = noRadius })

	sampleSize := n
	if sampleSize > maxSources {
		sampleSize = maxSources
	}
	starts := make([]uint32, sampleSize)
	for i := 0; i < sampleSize; i++ {
		// When every vertex fits in the 64-bit sample, each vertex is
		// its own source; hashInt only spreads the pick thinner when
		// n exceeds maxSources.
		var v uint32
		if sampleSize == n {
			v = uint32(i)
		} else {
			v = uint32(hashInt(uint64(i)) % uint64(n))
		}
		if preprocessed {
			v = newIDs[v]
		}
		radii[v] = 0
		starts[i] = v
		nextVisited[v] = uint64(1) << uint(i)
	}

	if err := counters.Init(events); err != nil {
		logger.Warn("perfcount init failed: %v", err)
	}
	counters.Reset()
	counters.Start()

	f := frontier.FromSparse(n, starts)
	round := int32(0)
	for !f.IsEmpty() {
		round++
		vertexmap.Map(f, func(v uint32) { visited[v] = nextVisited[v] })

		nextBitmap := make([]bool, n)
		uf := &updateFunc{visited: visited, nextVisited: nextVisited, radii: radii, round: round}
		f = edgemap.Map(g, f, nextBitmap, uf, -1, edgemap.FlagDenseForward)
	}

	counters.Stop()
	resultPath := apps.ResultFilename("Radii", inputFile, events)
	if err := counters.WriteResults(resultPath); err != nil {
		logger.Warn("writing perf results: %v", err)
	}

	asUint32 := make([]uint32, n)
	par.For(n, func(i int) { asUint32[i] = uint32(radii[i]) })
	if err := apps.WriteOutputUint32(asUint32, newIDs); err != nil {
		logger.Warn("writing output file: %v", err)
	}

	logger.Info("Iters until convergence = %d", round)

	return &Result{Radii: radii, Iterations: int(round)}, nil
}

// hashInt is a small integer hash used to pick well-spread sample sources,
// matching the role (not the exact bit pattern) of Ligra's hashInt.
func hashInt(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
