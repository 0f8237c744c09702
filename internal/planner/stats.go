package planner

// Stats aggregates one planning result. Per-record values are folded into
// a run-wide total with Add; there is no global accumulation state.
type Stats struct {
	Cost       float64
	ReuseMoves uint64
	SynthMoves uint64
	Joins      uint64
	Segments   uint64
	ReuseBases uint64
	SynthBases uint64
	Length     uint64
}

// Add folds o into s. Addition is associative and commutative, so
// per-record stats can be combined in any grouping or order.
func (s *Stats) Add(o Stats) {
	s.Cost += o.Cost
	s.ReuseMoves += o.ReuseMoves
	s.SynthMoves += o.SynthMoves
	s.Joins += o.Joins
	s.Segments += o.Segments
	s.ReuseBases += o.ReuseBases
	s.SynthBases += o.SynthBases
	s.Length += o.Length
}

// tally derives the stats of one record from its plan and total cost.
func tally(p Plan, cost float64, length int) Stats {
	st := Stats{
		Cost:     cost,
		Segments: uint64(len(p)),
		Length:   uint64(length),
	}
	if len(p) > 0 {
		st.Joins = uint64(len(p)) - 1
	}
	for _, b := range p {
		if b.Reused {
			st.ReuseMoves++
			st.ReuseBases += uint64(b.Length)
		} else {
			st.SynthMoves++
			st.SynthBases += uint64(b.Length)
		}
	}
	return st
}
