// Package reorder computes and applies vertex-id permutations that improve
// memory locality for the engine's CSR graph representation, as a
// dependency-free stand-in for the heavier reordering schemes graph
// systems use.
package reorder
