package graph

import "math"

// VMax is the sentinel vertex id meaning "no vertex" — used by
// applications for an unvisited parent pointer, an unset predecessor, and
// similar "not yet reached" markers. It is never itself a valid vertex id
// since no Graph in this engine has math.MaxUint32 vertices in practice.
const VMax uint32 = math.MaxUint32

// Graph is an immutable directed graph stored as two compressed-sparse-row
// structures, one per direction. Every method is safe for concurrent,
// read-only use by multiple goroutines — nothing here ever mutates once
// Builder.Build has returned it.
type Graph struct {
	n int
	m int64

	outOffsets []int64
	outNbrs    []uint32

	inOffsets []int64
	inNbrs    []uint32
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the total number of directed edges.
func (g *Graph) M() int64 { return g.m }

// OutDegree returns the number of out-edges of v.
func (g *Graph) OutDegree(v uint32) int {
	return int(g.outOffsets[v+1] - g.outOffsets[v])
}

// InDegree returns the number of in-edges of v.
func (g *Graph) InDegree(v uint32) int {
	return int(g.inOffsets[v+1] - g.inOffsets[v])
}

// OutNeighbor returns the i-th out-neighbor of v, 0 <= i < OutDegree(v).
func (g *Graph) OutNeighbor(v uint32, i int) uint32 {
	return g.outNbrs[g.outOffsets[v]+int64(i)]
}

// InNeighbor returns the i-th in-neighbor of v, 0 <= i < InDegree(v).
func (g *Graph) InNeighbor(v uint32, i int) uint32 {
	return g.inNbrs[g.inOffsets[v]+int64(i)]
}

// OutNeighbors returns the full out-neighbor row for v as a slice view.
// Callers must treat it as read-only.
func (g *Graph) OutNeighbors(v uint32) []uint32 {
	return g.outNbrs[g.outOffsets[v]:g.outOffsets[v+1]]
}

// InNeighbors returns the full in-neighbor row for v as a slice view.
// Callers must treat it as read-only.
func (g *Graph) InNeighbors(v uint32) []uint32 {
	return g.inNbrs[g.inOffsets[v]:g.inOffsets[v+1]]
}

// ForEachOutNeighbor sequentially invokes f with every out-neighbor of v.
func (g *Graph) ForEachOutNeighbor(v uint32, f func(w uint32)) {
	for _, w := range g.OutNeighbors(v) {
		f(w)
	}
}

// ForEachInNeighbor sequentially invokes f with every in-neighbor of v.
func (g *Graph) ForEachInNeighbor(v uint32, f func(w uint32)) {
	for _, w := range g.InNeighbors(v) {
		f(w)
	}
}
