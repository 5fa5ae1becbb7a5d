// Package edgemap implements the engine's central operation: a
// direction-optimizing edge traversal that applies a user-supplied
// UpdateFunc across the edges leaving (sparse/push) or entering
// (dense/pull) a frontier, switching automatically between the two based
// on the edge weight of the current frontier.
package edgemap
