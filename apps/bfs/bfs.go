// Package bfs computes a breadth-first-search parent array from a single
// source, ground on original_source/apps/BFS.C.
package bfs

import (
	"sync/atomic"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/edgemap"
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/graph"
	"github.com/katalvlaran/ligra/options"
	"github.com/katalvlaran/ligra/par"
	"github.com/katalvlaran/ligra/perfcount"
)

// NoParent marks an unvisited vertex in Result.Parents — VMax, the same
// sentinel BFS.C's UINT_E_MAX / MIN_IDENTITY uses.
const NoParent = graph.VMax

// Result is the output of a BFS run.
type Result struct {
	// Parents[v] is the BFS parent of v, or NoParent if v was never
	// reached. Parents[start] == start.
	Parents []uint32
	// Iterations is the number of edgeMap rounds until the frontier
	// emptied.
	Iterations int
	// ReachableCount is the number of vertices with Parents[v] != NoParent.
	ReachableCount int
}

// updateFunc is BFS_F translated to the UpdateFunc contract: it claims an
// unvisited destination exactly once, via CAS in UpdateAtomic so concurrent
// sources racing for the same destination still produce exactly one winner
// (see DESIGN.md Open Question (a)).
type updateFunc struct {
	edgemap.CondTrue
	nextBitmap []bool
	parents    []uint32
}

func (f *updateFunc) Update(s, d uint32) bool {
	if f.parents[d] == NoParent {
		f.parents[d] = s
		return true
	}
	return false
}

func (f *updateFunc) UpdateAtomic(s, d uint32) bool {
	addr := (*uint32)(&f.parents[d])
	if atomic.LoadUint32(addr) != NoParent {
		return false
	}
	claimed := atomic.CompareAndSwapUint32(addr, NoParent, s)
	if claimed && f.nextBitmap != nil {
		f.nextBitmap[d] = true
	}
	return claimed
}

// Compute runs BFS from the source vertex named by the "-r" option
// (default 0), translated through newIDs if the graph was preprocessed.
func Compute(g *graph.Graph, opts *options.Options, newIDs []uint32, logger apps.Logger, counters perfcount.Counters) (*Result, error) {
	events := opts.GetOptionValue("-e", "cycles:u")
	_, inputFile := opts.IOFileNames()

	preprocessed := len(newIDs) >= 2 && newIDs[0] != newIDs[1]
	start := uint32(opts.GetOptionLongValue("-r", 0))
	if preprocessed {
		start = newIDs[start]
	}

	n := g.N()
	parents := make([]uint32, n)
	par.For(n, func(i int) { parents[i] = NoParent })
	parents[start] = start

	if err := counters.Init(events); err != nil {
		logger.Warn("perfcount init failed: %v", err)
	}
	counters.Reset()
	counters.Start()

	f := frontier.FromSingleton(n, start)
	iter := 0
	for !f.IsEmpty() {
		nextBitmap := make([]bool, n)
		uf := &updateFunc{nextBitmap: nextBitmap, parents: parents}
		f = edgemap.Map(g, f, nextBitmap, uf, -1, edgemap.FlagDenseForward)
		iter++
	}

	counters.Stop()
	resultPath := apps.ResultFilename("BFS", inputFile, events)
	if err := counters.WriteResults(resultPath); err != nil {
		logger.Warn("writing perf results: %v", err)
	}

	if err := apps.WriteOutputUint32(parents, newIDs); err != nil {
		logger.Warn("writing output file: %v", err)
	}

	reachable := countReachable(parents)
	logger.Info("Num. Iters until convergence = %d", iter)
	logger.Info("No. of nodes in BFS-Tree = %d", reachable)

	return &Result{Parents: parents, Iterations: iter, ReachableCount: reachable}, nil
}

func countReachable(parents []uint32) int {
	flags := make([]bool, len(parents))
	par.For(len(parents), func(i int) {
		if parents[i] != NoParent {
			flags[i] = true
		}
	})
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return count
}
