package edgemap

// UpdateFunc is the user-supplied per-edge update contract. Applications
// implement one concrete type per traversal (see the apps package's BFS_F,
// PR_F, Radii_F equivalents).
type UpdateFunc interface {
	// Cond reports whether destination d should be visited at all; when
	// false the edge is skipped without calling Update/UpdateAtomic.
	Cond(d uint32) bool

	// Update applies the edge (s, d) non-atomically. The engine only
	// calls this when it guarantees exclusive ownership of d (dense pull
	// and dense-forward mode). Returns true to include d in the frontier
	// this call produces.
	Update(s, d uint32) bool

	// UpdateAtomic applies the edge (s, d) where d may be written
	// concurrently by other workers (sparse mode). Implementations must
	// use par's CAS-based atomics. Returns true to include d in the
	// frontier this call produces.
	UpdateAtomic(s, d uint32) bool
}

// CondTrue is an embeddable UpdateFunc.Cond implementation for
// applications whose traversal has no per-destination precondition —
// every one of the four bundled apps' C sources define cond as
// unconditionally true.
type CondTrue struct{}

// Cond always reports true.
func (CondTrue) Cond(uint32) bool { return true }

// Flags selects optional edgeMap behavior.
type Flags uint8

const (
	// FlagNoOutput skips building an output frontier entirely; Map
	// returns an empty subset. Use when only the side effects of the
	// update callbacks matter.
	FlagNoOutput Flags = 1 << iota

	// FlagDenseForward selects the dense-forward executor in place of
	// dense-pull whenever Map has already decided the round is dense
	// (E_out(F)+|F| > threshold): frontier vertices are iterated in
	// parallel (push direction) but destination ownership is partitioned
	// so each destination is written by exactly one worker, letting the
	// callback use the non-atomic Update. It does not override Map's
	// sparse/dense choice — a round Map would otherwise run sparse still
	// runs sparse, using UpdateAtomic, regardless of this flag.
	FlagDenseForward

	// FlagRemoveDuplicates deduplicates the sparse output frontier so
	// each destination vertex appears at most once.
	FlagRemoveDuplicates
)
