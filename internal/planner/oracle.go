// Package planner computes construction plans for a target sequence:
// partitions into blocks of bounded length, each reused from a source
// genome or synthesized, priced by a CostModel. DP is exact; Greedy is a
// fast baseline. Both consume the same match oracle interface.
package planner

// Source is the match oracle a planner queries: exact-substring membership
// against one source genome, plus incremental narrowing of a match
// interval one symbol at a time. Intervals are opaque (lo, hi) ranges over
// the oracle's internal suffix ordering. They only ever shrink: once an
// extension reports zero matches the interval is terminal, and every
// further extension of it also reports zero.
//
// A Source must be safe for unsynchronized concurrent queries; the only
// per-query state is the interval held by the caller.
type Source interface {
	// Exists reports whether p occurs verbatim in the source.
	Exists(p []byte) bool

	// BeginBackward starts a pattern that grows leftward from a fixed
	// right edge; ExtendBackward prepends c to it.
	BeginBackward() (lo, hi int)
	ExtendBackward(lo, hi int, c byte) (lo2, hi2, matches int)

	// BeginForward starts a pattern that grows rightward from a fixed
	// left edge; ExtendForward appends c to it.
	BeginForward() (lo, hi int)
	ExtendForward(lo, hi int, c byte) (lo2, hi2, matches int)
}

// anyExists reports whether block occurs verbatim in at least one source.
func anyExists(sources []Source, block []byte) bool {
	for _, s := range sources {
		if s.Exists(block) {
			return true
		}
	}
	return false
}
