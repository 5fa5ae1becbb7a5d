// Package apps contains the engine's four bundled applications — BFS,
// PageRank, PageRankDelta and Radii — each a thin Compute routine built on
// top of graph, frontier, edgemap and vertexmap, plus the output and
// logging conventions shared across them.
package apps
