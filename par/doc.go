// Package par provides the data-parallel building blocks the rest of this
// module is built on: a bounded-concurrency parallel-for, an exclusive
// prefix-sum, filter/pack, associative reduction, and CAS-based atomic
// read-modify-write helpers for 32- and 64-bit words.
//
// Every operation here is a fork-join step: it starts goroutines, waits for
// all of them, and only then returns. There is no cancellation and no
// error return — these are the primitives the engine's hot path is built
// from, and the hot path does not fail (see the top-level design notes).
package par
