package planner

// CostModel prices the two ways of acquiring a block, and the junctions
// between adjacent blocks. All cost scalars are non-negative; the caller
// validates them before planning starts.
type CostModel struct {
	// Window is the maximum block length, in bases.
	Window int

	// ReuseCost is charged once per reused block, regardless of length.
	ReuseCost float64

	// JoinCost is charged per junction. The first block of a sequence
	// has no preceding junction and is not charged.
	JoinCost float64

	// SynthLinear and SynthQuad price de novo synthesis of a length-w
	// block at SynthLinear*w + SynthQuad*w*w.
	SynthLinear float64
	SynthQuad   float64
}

// Synthesis is the cost of synthesizing a block of length w.
func (m CostModel) Synthesis(w int) float64 {
	x := float64(w)
	return m.SynthLinear*x + m.SynthQuad*x*x
}

// Acquisition is the cost of acquiring a length-w block.
func (m CostModel) Acquisition(w int, reused bool) float64 {
	if reused {
		return m.ReuseCost
	}
	return m.Synthesis(w)
}

// join is the junction cost of a block starting at start.
func (m CostModel) join(start int) float64 {
	if start > 0 {
		return m.JoinCost
	}
	return 0
}
