// Package vertexmap implements the engine's per-vertex primitives:
// vertexMap (apply a side-effecting function to every member of a
// frontier) and vertexFilter (produce a new frontier from a predicate).
package vertexmap
