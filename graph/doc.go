// Package graph defines the immutable, read-only directed graph the engine
// operates over: a compressed-sparse-row representation in both the
// forward (out-edge) and backward (in-edge) direction, giving O(1) degree
// lookups and O(deg) sequential neighbor enumeration with contiguous
// memory.
//
// A Graph is built once, via Builder, and never mutated afterwards — the
// engine's direction-optimizing traversal depends on being free to
// parallel-iterate neighbor ranges without a lock.
package graph
