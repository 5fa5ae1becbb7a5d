// Package ioadj loads the Ligra-adj text graph format: a header line
// "AdjacencyGraph", then n, m, n out-offsets, then m out-destination ids,
// one whitespace-separated token per entry. See original_source/ for the
// adjacency-format apps that consume graphs in this shape.
package ioadj
