// Package pagerank computes PageRank to a fixed iteration cap or an
// L1-norm convergence threshold, ground on original_source/apps/PageRank.C.
package pagerank

import (
	"math"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/edgemap"
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/graph"
	"github.com/katalvlaran/ligra/options"
	"github.com/katalvlaran/ligra/par"
	"github.com/katalvlaran/ligra/perfcount"
	"github.com/katalvlaran/ligra/vertexmap"
)

const (
	damping = 0.85
	epsilon = 0.0000001
)

// Result is the output of a PageRank run.
type Result struct {
	// Ranks[v] is v's converged (or capped-out) PageRank mass.
	Ranks []float64
	// Iterations is the number of rounds executed.
	Iterations int
	// L1Norm is the L1 distance between the last two iterates.
	L1Norm float64
}

// updateFunc is PR_F: propagate p_curr[s]/outDegree(s) additively into
// p_next[d]. Always run in dense-forward mode (ground: PageRank.C always
// calls edgeMap with no_output | dense_forward), so Update (non-atomic) is
// always the one actually exercised.
type updateFunc struct {
	edgemap.CondTrue
	g     *graph.Graph
	pCurr []float64
	pNext []float64
}

func (f *updateFunc) Update(s, d uint32) bool {
	f.pNext[d] += f.pCurr[s] / float64(f.g.OutDegree(s))
	return false
}

func (f *updateFunc) UpdateAtomic(s, d uint32) bool {
	par.WriteAddFloat64(&f.pNext[d], f.pCurr[s]/float64(f.g.OutDegree(s)))
	return false
}

// Compute runs PageRank with damping 0.85 and an L1-norm convergence
// threshold of 1e-7, stopping at whichever of those or "-maxiters" (default
// 100) comes first.
func Compute(g *graph.Graph, opts *options.Options, newIDs []uint32, logger apps.Logger, counters perfcount.Counters) (*Result, error) {
	events := opts.GetOptionValue("-e", "0x53003c")
	_, inputFile := opts.IOFileNames()
	maxIters := int(opts.GetOptionLongValue("-maxiters", 100))

	n := g.N()
	oneOverN := 1.0 / float64(n)

	pCurr := make([]float64, n)
	par.For(n, func(i int) { pCurr[i] = oneOverN })
	pNext := make([]float64, n)

	all := frontier.FromAll(n)

	if err := counters.Init(events); err != nil {
		logger.Warn("perfcount init failed: %v", err)
	}
	counters.Reset()
	counters.Start()

	addedConstant := (1 - damping) * oneOverN
	iter := 0
	l1Norm := 0.0
	for iter < maxIters {
		iter++

		edgemap.Map(g, all, nil, &updateFunc{g: g, pCurr: pCurr, pNext: pNext}, -1, edgemap.FlagNoOutput|edgemap.FlagDenseForward)
		vertexmap.Map(all, func(v uint32) {
			pNext[v] = damping*pNext[v] + addedConstant
		})

		diffs := make([]float64, n)
		par.For(n, func(i int) { diffs[i] = math.Abs(pCurr[i] - pNext[i]) })
		l1Norm = par.Reduce(diffs, 0.0, func(a, b float64) float64 { return a + b })
		if l1Norm < epsilon {
			pCurr, pNext = pNext, pCurr
			break
		}

		vertexmap.Map(all, func(v uint32) { pCurr[v] = 0.0 })
		pCurr, pNext = pNext, pCurr
	}

	counters.Stop()
	resultPath := apps.ResultFilename("PageRank", inputFile, events)
	if err := counters.WriteResults(resultPath); err != nil {
		logger.Warn("writing perf results: %v", err)
	}

	if err := apps.WriteOutputFloat64(pCurr, newIDs); err != nil {
		logger.Warn("writing output file: %v", err)
	}

	logger.Info("Num Iters = %d", iter)
	logger.Info("L1_Norm   = %v", l1Norm)

	return &Result{Ranks: pCurr, Iterations: iter, L1Norm: l1Norm}, nil
}
