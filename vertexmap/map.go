package vertexmap

import (
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/par"
)

// Map applies uf to every member of f in parallel. It produces no output
// frontier; callers needing one use Filter.
func Map(f *frontier.Subset, uf func(v uint32)) {
	if f.IsSparse() {
		ids := f.ToSparse()
		par.For(len(ids), func(i int) { uf(ids[i]) })
		return
	}
	bits := f.ToDense()
	par.For(len(bits), func(i int) {
		if bits[i] {
			uf(uint32(i))
		}
	})
}

// Filter applies uf to every member of f in parallel and returns a new
// Subset over [0, f.N()) containing exactly the members for which uf
// returned true.
func Filter(f *frontier.Subset, uf func(v uint32) bool) *frontier.Subset {
	n := f.N()
	if f.IsSparse() {
		ids := f.ToSparse()
		flags := make([]bool, len(ids))
		par.For(len(ids), func(i int) { flags[i] = uf(ids[i]) })
		return frontier.FromSparse(n, par.PackBy(ids, flags))
	}

	bits := f.ToDense()
	out := make([]bool, n)
	par.For(n, func(i int) {
		if bits[i] && uf(uint32(i)) {
			out[i] = true
		}
	})
	return frontier.FromDense(n, out)
}
