// Package pagerankdelta computes PageRank using delta propagation, so
// vertices whose rank has stabilized drop out of the active frontier,
// ground on original_source/apps/PageRankDelta.C.
package pagerankdelta

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
	damping  = 0.85
	epsilon  = 0.0000001
	epsilon2 = 0.01
)

// Result is the output of a PageRankDelta run.
type Result struct {
	Ranks      []float64
	Iterations int
	L1Norm     float64
}

// updateFunc is PR_F: propagate Delta[s]/outDegree(s) additively into
// nghSum[d].
type updateFunc struct {
	edgemap.CondTrue
	g      *graph.Graph
	delta  []float64
	nghSum []float64
}

func (f *updateFunc) Update(s, d uint32) bool {
	f.nghSum[d] += f.delta[s] / float64(f.g.OutDegree(s))
	return false
}

func (f *updateFunc) UpdateAtomic(s, d uint32) bool {
	par.WriteAddFloat64(&f.nghSum[d], f.delta[s]/float64(f.g.OutDegree(s)))
	return false
}

// Compute runs PageRank-Delta: vertices whose rank change falls under
// epsilon2*p[i] stop propagating, shrinking the active frontier as the
// computation converges.
func Compute(g *graph.Graph, opts *options.Options, newIDs []uint32, logger apps.Logger, counters perfcount.Counters) (*Result, error) {
	events := opts.GetOptionValue("-e", "cycles:u")
	_, inputFile := opts.IOFileNames()
	maxIters := int(opts.GetOptionLongValue("-maxiters", 100))

	n := g.N()
	oneOverN := 1.0 / float64(n)

	p := make([]float64, n)
	delta := make([]float64, n)
	nghSum := make([]float64, n)
	par.For(n, func(i int) { delta[i] = oneOverN })

	all := frontier.FromAll(n)
	active := all

	if err := counters.Init(events); err != nil {
		logger.Warn("perfcount init failed: %v", err)
	}
	counters.Reset()
	counters.Start()

	threshold := g.M() / 20
	round := 0
	l1Norm := 0.0
	for round < maxIters {
		round++

		edgemap.Map(g, active, nil, &updateFunc{g: g, delta: delta, nghSum: nghSum}, threshold, edgemap.FlagNoOutput|edgemap.FlagDenseForward)

		if round == 1 {
			active = vertexmap.Filter(all, func(i uint32) bool {
				delta[i] = damping*nghSum[i] + (1-damping)*oneOverN
				p[i] += delta[i]
				delta[i] -= oneOverN
				return math.Abs(delta[i]) > epsilon2*p[i]
			})
		} else {
			active = vertexmap.Filter(all, func(i uint32) bool {
				delta[i] = nghSum[i] * damping
				if math.Abs(delta[i]) > epsilon2*p[i] {
					p[i] += delta[i]
					return true
				}
				return false
			})
		}

		diffs := make([]float64, n)
		par.For(n, func(i int) { diffs[i] = math.Abs(delta[i]) })
		l1Norm = par.Reduce(diffs, 0.0, func(a, b float64) float64 { return a + b })
		if l1Norm < epsilon {
			break
		}

		vertexmap.Map(all, func(i uint32) { nghSum[i] = 0.0 })
	}

	counters.Stop()
	resultPath := apps.ResultFilename("PageRankDelta", inputFile, events)
	if err := counters.WriteResults(resultPath); err != nil {
		logger.Warn("writing perf results: %v", err)
	}

	if err := apps.WriteOutputFloat64(p, newIDs); err != nil {
		logger.Warn("writing output file: %v", err)
	}

	logger.Info("Num Iters = %d", round)
	logger.Info("L1_Norm   = %v", l1Norm)

	return &Result{Ranks: p, Iterations: round, L1Norm: l1Norm}, nil
}
