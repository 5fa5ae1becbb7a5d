package graph

import "errors"

// Sentinel errors returned by Builder.Build.
var (
	// ErrDegreeMismatch indicates the built graph's summed out-degrees and
	// in-degrees disagree, which would mean an edge was recorded on one
	// side only — a bug in Builder, not a caller error.
	ErrDegreeMismatch = errors.New("graph: sum of out-degrees does not equal sum of in-degrees")

	// ErrVertexOutOfRange indicates AddEdge was called with an endpoint
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")
)
