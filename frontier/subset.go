package frontier

import "github.com/katalvlaran/ligra/par"

// Subset is the engine's VertexSubset: a subset of [0, n) held as a sparse
// id list, a dense bitmap, or (transiently, after a conversion) both. The
// two representations are kept logically equivalent — Size always agrees
// with whichever forms are populated.
//
// A Subset owns whichever backing slices it holds; call Release when done
// with it so a long-lived caller doesn't accidentally keep both
// representations of a large frontier alive at once.
type Subset struct {
	n    int
	size int
	ids  []uint32 // sparse representation; nil if not materialised
	bits []bool   // dense representation; nil if not materialised
}

// FromSingleton returns a sparse Subset of the single vertex v out of n.
func FromSingleton(n int, v uint32) *Subset {
	return &Subset{n: n, size: 1, ids: []uint32{v}}
}

// FromSparse returns a sparse Subset wrapping ids directly (no copy, no
// sort) — the caller transfers ownership of ids to the Subset.
func FromSparse(n int, ids []uint32) *Subset {
	return &Subset{n: n, size: len(ids), ids: ids}
}

// FromDense returns a dense Subset wrapping bits directly — the caller
// transfers ownership of bits to the Subset. len(bits) must equal n.
func FromDense(n int, bits []bool) *Subset {
	return &Subset{n: n, size: countSet(bits), bits: bits}
}

// FromAll returns a dense Subset containing every vertex in [0, n).
func FromAll(n int) *Subset {
	bits := make([]bool, n)
	par.For(n, func(i int) { bits[i] = true })
	return &Subset{n: n, size: n, bits: bits}
}

func countSet(bits []bool) int {
	asInt := make([]int64, len(bits))
	for i, b := range bits {
		if b {
			asInt[i] = 1
		}
	}
	_, total := par.PrefixSum(asInt)
	return int(total)
}

// N returns the universe size the Subset was built against.
func (s *Subset) N() int { return s.n }

// Size returns |S|.
func (s *Subset) Size() int { return s.size }

// IsEmpty reports whether |S| == 0.
func (s *Subset) IsEmpty() bool { return s.size == 0 }

// IsDense reports whether the dense representation is currently
// materialised.
func (s *Subset) IsDense() bool { return s.bits != nil }

// IsSparse reports whether the sparse representation is currently
// materialised.
func (s *Subset) IsSparse() bool { return s.ids != nil }

// Contains reports whether v is a member of S, materialising the dense
// representation if only the sparse one currently exists.
func (s *Subset) Contains(v uint32) bool {
	return s.ToDense()[v]
}

// ToSparse returns (and caches) the sparse id list for S, converting from
// the dense bitmap via Pack + prefix-sum if necessary. Once converted from
// dense, the returned ids are in ascending vertex order.
func (s *Subset) ToSparse() []uint32 {
	if s.ids == nil {
		packed := par.Pack(s.bits)
		ids := make([]uint32, len(packed))
		for i, v := range packed {
			ids[i] = uint32(v)
		}
		s.ids = ids
	}
	return s.ids
}

// ToDense returns (and caches) the dense bitmap for S, converting from the
// sparse id list if necessary.
func (s *Subset) ToDense() []bool {
	if s.bits == nil {
		bits := make([]bool, s.n)
		for _, v := range s.ids {
			bits[v] = true
		}
		s.bits = bits
	}
	return s.bits
}

// Release drops both representations, so a Subset that is no longer
// referenced elsewhere becomes immediately collectible rather than pinned
// by a stray pointer.
func (s *Subset) Release() {
	s.ids = nil
	s.bits = nil
	s.size = 0
	s.n = 0
}
