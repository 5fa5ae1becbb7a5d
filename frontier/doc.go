// Package frontier implements VertexSubset: the dual sparse/dense
// representation of the engine's "active set" of vertices, and the
// conversions between the two forms that edgeMap relies on to switch
// traversal direction transparently.
package frontier
