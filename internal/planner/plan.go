package planner

// Block is one contiguous run of target bases acquired a single way.
type Block struct {
	Start  int
	Length int

	// Reused marks a block copied verbatim from a source; otherwise the
	// block is synthesized.
	Reused bool
}

// Plan is an ordered partition of the whole target sequence: blocks are
// contiguous, non-overlapping, and cover every base.
type Plan []Block

// Cost totals the plan under m, junction costs included.
func (p Plan) Cost(m CostModel) float64 {
	total := 0.0
	for _, b := range p {
		total += m.Acquisition(b.Length, b.Reused) + m.join(b.Start)
	}
	return total
}
