package graph

import "github.com/katalvlaran/ligra/par"

// Builder accumulates directed edges and produces an immutable *Graph.
// It mirrors the teacher repo's mutable-builder-then-freeze shape (compare
// builder/api.go's NewBuilder/Build pair) but freezes into a CSR structure
// rather than an adjacency map, since the engine requires O(1) degree and
// contiguous neighbor storage that a map cannot give.
//
// A Builder is not safe for concurrent use; build the edge list, then call
// Build once.
type Builder struct {
	n     int
	froms []uint32
	tos   []uint32
}

// NewBuilder returns a Builder for a graph with n vertices, ids [0, n).
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// AddEdge records a directed edge from -> to. Both endpoints must be in
// [0, n); AddEdge does not check them — Build reports an out-of-range
// endpoint as ErrVertexOutOfRange.
func (b *Builder) AddEdge(from, to uint32) {
	b.froms = append(b.froms, from)
	b.tos = append(b.tos, to)
}

// Build freezes the accumulated edges into an immutable *Graph with both
// CSR directions, returning ErrVertexOutOfRange if any endpoint is outside
// [0, n) and ErrDegreeMismatch if the resulting out/in degree sums
// disagree (which would indicate an internal bug, not a caller error).
func (b *Builder) Build() (*Graph, error) {
	n := b.n
	m := int64(len(b.froms))

	outDeg := make([]int64, n)
	inDeg := make([]int64, n)
	for i := 0; i < len(b.froms); i++ {
		from, to := b.froms[i], b.tos[i]
		if int(from) >= n || int(to) >= n {
			return nil, ErrVertexOutOfRange
		}
		outDeg[from]++
		inDeg[to]++
	}

	outOffsets, outTotal := par.PrefixSum(outDeg)
	inOffsets, inTotal := par.PrefixSum(inDeg)
	if outTotal != inTotal {
		return nil, ErrDegreeMismatch
	}
	outOffsets = append(outOffsets, outTotal)
	inOffsets = append(inOffsets, inTotal)

	outNbrs := make([]uint32, m)
	inNbrs := make([]uint32, m)
	outCursor := append([]int64(nil), outOffsets[:n]...)
	inCursor := append([]int64(nil), inOffsets[:n]...)
	for i := 0; i < len(b.froms); i++ {
		from, to := b.froms[i], b.tos[i]
		outNbrs[outCursor[from]] = to
		outCursor[from]++
		inNbrs[inCursor[to]] = from
		inCursor[to]++
	}

	return &Graph{
		n:          n,
		m:          m,
		outOffsets: outOffsets,
		outNbrs:    outNbrs,
		inOffsets:  inOffsets,
		inNbrs:     inNbrs,
	}, nil
}
