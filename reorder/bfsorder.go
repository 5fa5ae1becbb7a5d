package reorder

import "github.com/katalvlaran/ligra/graph"

// BFSOrder numbers every vertex reachable from root in BFS visitation
// order (root gets 0, its neighbors get 1..k, and so on), then appends any
// unreached vertices in their original order. The result is a NewIDs
// permutation: NewIDs[original] = internal. When the BFS order already
// equals the identity permutation, BFSOrder returns the degenerate
// "no preprocessing" sentinel []uint32{0, 0} instead of a full identity
// slice, matching the engine-wide NewIDs[0] == NewIDs[1] convention.
func BFSOrder(g *graph.Graph, root uint32) []uint32 {
	n := g.N()
	newIDs := make([]uint32, n)
	visited := make([]bool, n)

	queue := make([]uint32, 0, n)
	queue = append(queue, root)
	visited[root] = true

	next := uint32(0)
	identity := true
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		if v != next {
			identity = false
		}
		newIDs[v] = next
		next++

		g.ForEachOutNeighbor(v, func(w uint32) {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		})
	}

	for v := uint32(0); v < uint32(n); v++ {
		if !visited[v] {
			if v != next {
				identity = false
			}
			newIDs[v] = next
			next++
		}
	}

	if identity {
		return []uint32{0, 0}
	}
	return newIDs
}
