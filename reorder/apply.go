package reorder

import "github.com/katalvlaran/ligra/graph"

// Apply rebuilds g under the permutation newIDs (original id -> internal
// id) via graph.Builder, for callers that want the reordering materialized
// as a new *graph.Graph rather than just carrying the NewIDs mapping
// forward for output translation. newIDs must be a valid permutation of
// [0, g.N()) produced for g (e.g. by BFSOrder); Apply panics if Builder
// rejects it, since that indicates a caller bug rather than a runtime
// condition to recover from.
func Apply(g *graph.Graph, newIDs []uint32) *graph.Graph {
	n := g.N()
	b := graph.NewBuilder(n)
	for v := uint32(0); v < uint32(n); v++ {
		g.ForEachOutNeighbor(v, func(w uint32) {
			b.AddEdge(newIDs[v], newIDs[w])
		})
	}
	out, err := b.Build()
	if err != nil {
		panic(err)
	}
	return out
}
