package fmindex

// Handle owns the forward and reverse indexes of one source genome.
type Handle struct {
	// Name identifies the source, typically the FASTA file's basename.
	Name string

	// Fwd indexes the source text and serves backward extension: the
	// pattern grows leftward from a fixed right edge.
	Fwd *Index

	// Rev indexes the reversed text and serves forward extension: the
	// pattern grows rightward from a fixed left edge.
	Rev *Index
}

// New builds the index pair over the cleaned source records. Records are
// joined with a separator so blocks never match across record boundaries.
func New(name string, seqs [][]byte) *Handle {
	text := join(seqs)
	return &Handle{
		Name: name,
		Fwd:  build(text),
		Rev:  build(reversed(text)),
	}
}

// Exists reports whether p occurs verbatim in the source.
func (h *Handle) Exists(p []byte) bool {
	return h.Fwd.Count(p) > 0
}

// BeginBackward starts a pattern that grows leftward from a fixed right edge.
func (h *Handle) BeginBackward() (lo, hi int) {
	return h.Fwd.Begin()
}

// ExtendBackward prepends c to the growing pattern.
func (h *Handle) ExtendBackward(lo, hi int, c byte) (lo2, hi2, matches int) {
	return h.Fwd.Extend(lo, hi, c)
}

// BeginForward starts a pattern that grows rightward from a fixed left edge.
func (h *Handle) BeginForward() (lo, hi int) {
	return h.Rev.Begin()
}

// ExtendForward appends c to the back of the growing pattern. Over the
// reversed text an append is a prepend, so it is the same index step.
func (h *Handle) ExtendForward(lo, hi int, c byte) (lo2, hi2, matches int) {
	return h.Rev.Extend(lo, hi, c)
}

func join(seqs [][]byte) []byte {
	size := 0
	for _, s := range seqs {
		size += len(s) + 1
	}
	text := make([]byte, 0, size)
	for i, s := range seqs {
		if i > 0 {
			text = append(text, separator)
		}
		text = append(text, s...)
	}
	return text
}

func reversed(s []byte) []byte {
	r := make([]byte, len(s))
	for i, c := range s {
		r[len(s)-1-i] = c
	}
	return r
}
