// Package ligra is a shared-memory parallel graph processing engine in the
// style of Ligra (Shun & Blelloch, PPoPP 2013): a small set of data-
// parallel primitives, an immutable compressed-sparse-row graph, and a
// single direction-optimizing traversal operator that four bundled
// applications (BFS, PageRank, PageRank-Delta, Radii) are built on top of.
//
// Under the hood, everything is organized under focused subpackages:
//
//	par/         — data-parallel primitives: parallel-for, prefix-sum, pack, reduce, atomics
//	graph/       — immutable directed graph stored as dual in/out CSR
//	frontier/    — VertexSubset, the sparse/dense active-vertex working set
//	edgemap/     — edgeMap, the engine's direction-optimizing traversal operator
//	vertexmap/   — vertexMap/vertexFilter, parallel per-vertex map and filter
//	ioadj/       — Ligra-adj text format graph loader
//	reorder/     — BFS-order locality permutation
//	options/     — command-line argument handling
//	perfcount/   — hardware performance counter collaborator
//	apps/        — shared logging/output helpers, plus bfs/pagerank/pagerankdelta/radii
//	cmd/ligra/   — CLI entry point dispatching to the bundled applications
//
// See DESIGN.md for the grounding behind each package's design.
package ligra
