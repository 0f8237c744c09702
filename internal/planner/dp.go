package planner

import (
	"errors"
	"fmt"
)

// ErrInconsistentTrace reports a corrupt predecessor arena found while
// backtracking a DP table. It signals an internal invariant violation,
// never a problem with the input.
var ErrInconsistentTrace = errors.New("planner: inconsistent backtracking trace")

// unreachable is the sentinel cost of DP states no partition has reached.
// Real costs are finite and non-negative, so they always win a comparison.
const unreachable = 1e18

// trace records, per target position, the block choice that achieved the
// minimum: an index-based arena rather than a linked structure, since the
// DP's dependency graph is a plain array.
type trace struct {
	pred   int32
	length int32
	reused bool
}

// DP computes the exact minimum-cost partition of seq into blocks of
// length at most model.Window, each reused from a source or synthesized.
//
// With a single source, candidate lengths ending at each position are
// priced by narrowing one backward-match interval a symbol at a time, so a
// position costs O(Window) oracle steps. With several sources the planner
// falls back to a per-length existence test against each source, which is
// quadratic in Window per position in character comparisons.
func DP(seq []byte, sources []Source, model CostModel) (Plan, Stats, error) {
	n := len(seq)
	if n == 0 {
		return nil, Stats{}, nil
	}

	best := make([]float64, n+1)
	arena := make([]trace, n+1)
	for i := 1; i <= n; i++ {
		best[i] = unreachable
		arena[i].pred = -1
	}

	single := len(sources) == 1
	for i := 1; i <= n; i++ {
		if single {
			best[i] = minCostAt(seq, i, sources[0], best, arena, model)
		} else {
			best[i] = minCostAtMulti(seq, i, sources, best, arena, model)
		}
	}

	plan, err := backtrack(arena, n)
	if err != nil {
		return nil, Stats{}, err
	}
	return plan, tally(plan, best[n], n), nil
}

// minCostAt scans candidate block lengths ending at position i, growing
// the match interval backward by one symbol per length. Lengths are
// scanned ascending and only strict improvements win, so ties keep the
// shortest block; the per-record output is reproducible.
func minCostAt(seq []byte, i int, src Source, best []float64, arena []trace, model CostModel) float64 {
	maxW := model.Window
	if i < maxW {
		maxW = i
	}

	minCost := unreachable
	lo, hi := src.BeginBackward()
	for w := 1; w <= maxW; w++ {
		j := i - w
		var matches int
		lo, hi, matches = src.ExtendBackward(lo, hi, seq[j])

		reused := matches > 0
		if cost := best[j] + model.Acquisition(w, reused) + model.join(j); cost < minCost {
			minCost = cost
			arena[i] = trace{pred: int32(j), length: int32(w), reused: reused}
		}

		if matches == 0 {
			// No longer block ending at i can match either. The rest are
			// synthesis-only, priced in closed form without the oracle.
			for w2 := w + 1; w2 <= maxW; w2++ {
				j2 := i - w2
				if cost := best[j2] + model.Synthesis(w2) + model.join(j2); cost < minCost {
					minCost = cost
					arena[i] = trace{pred: int32(j2), length: int32(w2), reused: false}
				}
			}
			break
		}
	}
	return minCost
}

// minCostAtMulti prices candidate block lengths ending at i against
// several sources: a block is reusable if any source contains it.
func minCostAtMulti(seq []byte, i int, sources []Source, best []float64, arena []trace, model CostModel) float64 {
	maxW := model.Window
	if i < maxW {
		maxW = i
	}

	minCost := unreachable
	for w := 1; w <= maxW; w++ {
		j := i - w
		reused := anyExists(sources, seq[j:i])
		if cost := best[j] + model.Acquisition(w, reused) + model.join(j); cost < minCost {
			minCost = cost
			arena[i] = trace{pred: int32(j), length: int32(w), reused: reused}
		}
	}
	return minCost
}

// backtrack recovers the chosen blocks from the arena, back to front. A
// malformed entry stops the walk with ErrInconsistentTrace rather than
// looping; it cannot occur for a correctly computed table.
func backtrack(arena []trace, n int) (Plan, error) {
	var rev Plan
	for cur := n; cur > 0; {
		t := arena[cur]
		if t.pred < 0 || t.length <= 0 || int(t.pred)+int(t.length) != cur {
			return nil, fmt.Errorf("%w: position %d", ErrInconsistentTrace, cur)
		}
		rev = append(rev, Block{Start: int(t.pred), Length: int(t.length), Reused: t.reused})
		cur = int(t.pred)
	}

	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev, nil
}
