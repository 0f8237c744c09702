package planner

// Policy selects the reuse length a greedy planner takes at the current
// position, given the longest reusable length the oracle found there and
// the window-limited maximum. Returning 0 synthesizes a single base. A
// policy must never return more than longest.
type Policy interface {
	Name() string
	Choose(longest, limit int) int
}

// ReplicationFirst always takes the longest reusable block available.
var ReplicationFirst Policy = replicationFirst{}

type replicationFirst struct{}

func (replicationFirst) Name() string { return "replication-first" }

func (replicationFirst) Choose(longest, limit int) int { return longest }

// MaxBlock reuses a block only when it fills the whole window-limited
// maximum, preferring uniform maximal blocks over short opportunistic
// ones; anything less is synthesized base by base.
var MaxBlock Policy = maxBlock{}

type maxBlock struct{}

func (maxBlock) Name() string { return "max-block" }

func (maxBlock) Choose(longest, limit int) int {
	if longest == limit {
		return longest
	}
	return 0
}

// Greedy partitions seq left to right, consulting policy at every
// position. It is a fast approximation with no optimality guarantee and
// never backtracks.
//
// With a single source, the longest reusable length at a position is found
// by extending one forward-match interval a symbol at a time, stopping at
// the first zero count; with several sources it falls back to a descending
// per-length existence scan.
func Greedy(seq []byte, sources []Source, model CostModel, policy Policy) (Plan, Stats) {
	n := len(seq)
	if n == 0 {
		return nil, Stats{}
	}

	single := len(sources) == 1
	var plan Plan
	cost := 0.0
	for i := 0; i < n; {
		limit := model.Window
		if rem := n - i; rem < limit {
			limit = rem
		}

		longest := 0
		if single {
			lo, hi := sources[0].BeginForward()
			for w := 1; w <= limit; w++ {
				var matches int
				lo, hi, matches = sources[0].ExtendForward(lo, hi, seq[i+w-1])
				if matches == 0 {
					break
				}
				longest = w
			}
		} else {
			for w := limit; w >= 1; w-- {
				if anyExists(sources, seq[i:i+w]) {
					longest = w
					break
				}
			}
		}

		take := policy.Choose(longest, limit)
		reused := take > 0
		if !reused {
			take = 1
		}
		cost += model.Acquisition(take, reused) + model.join(i)
		plan = append(plan, Block{Start: i, Length: take, Reused: reused})
		i += take
	}

	return plan, tally(plan, cost, n)
}
