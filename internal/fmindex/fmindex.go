// Package fmindex implements the exact-substring match oracle the planners
// query: an FM-index (BWT plus rank tables) over a source genome, answering
// occurrence-count queries and supporting one-symbol-at-a-time narrowing of
// a match interval.
//
// A Handle bundles two indexes per source: one over the text itself, for
// patterns grown leftward from a fixed right edge, and one over the
// reversed text, for patterns grown rightward from a fixed left edge. Built
// indexes are immutable; all per-query state lives in the caller's (lo, hi)
// interval, so a Handle is safe for unsynchronized concurrent queries.
package fmindex

import "sort"

// separator joins source records before indexing. Query patterns are pure
// ACGT, so no pattern can match across a record boundary.
const separator = '#'

// terminator ends the indexed text.
const terminator = '$'

// Index is a rank-capable FM-index over one text. Count and Extend are the
// only query operations; occurrences never need to be located, so the
// suffix array is a construction-time temporary and is not retained.
type Index struct {
	// BWT is the Burrows-Wheeler transform of text+terminator.
	BWT []byte

	// C[c] is the number of text symbols strictly smaller than c.
	C [256]int32

	// Occ[c][i] is the number of occurrences of c in BWT[0..i].
	Occ map[byte][]int32
}

// Begin returns the interval matching the empty pattern: every suffix.
func (x *Index) Begin() (lo, hi int) {
	return 0, len(x.BWT) - 1
}

// Extend narrows (lo, hi) to the suffixes prefixed by c followed by the
// pattern matched so far, and reports how many occurrences remain. A zero
// count is terminal: extending the returned interval any further also
// reports zero.
func (x *Index) Extend(lo, hi int, c byte) (lo2, hi2, matches int) {
	if lo > hi {
		return lo, hi, 0
	}
	occ, ok := x.Occ[c]
	if !ok {
		return 1, 0, 0
	}
	var before int32
	if lo > 0 {
		before = occ[lo-1]
	}
	lo2 = int(x.C[c] + before)
	hi2 = int(x.C[c]+occ[hi]) - 1
	if lo2 > hi2 {
		return lo2, hi2, 0
	}
	return lo2, hi2, hi2 - lo2 + 1
}

// Count reports how many times p occurs in the indexed text. Cost is one
// Extend per pattern symbol.
func (x *Index) Count(p []byte) int {
	lo, hi := x.Begin()
	if len(p) == 0 {
		return hi - lo + 1
	}
	matches := 0
	for i := len(p) - 1; i >= 0; i-- {
		lo, hi, matches = x.Extend(lo, hi, p[i])
		if matches == 0 {
			return 0
		}
	}
	return matches
}

// build constructs the index over text. The terminator is appended here.
func build(text []byte) *Index {
	t := make([]byte, len(text)+1)
	copy(t, text)
	t[len(text)] = terminator
	n := len(t)

	sa := suffixArray(t)

	bwt := make([]byte, n)
	for i, p := range sa {
		if p == 0 {
			bwt[i] = t[n-1]
		} else {
			bwt[i] = t[p-1]
		}
	}

	x := &Index{BWT: bwt, Occ: make(map[byte][]int32)}

	var count [256]int32
	for _, c := range t {
		count[c]++
	}
	var sum int32
	for c := 0; c < 256; c++ {
		x.C[c] = sum
		sum += count[c]
	}

	for c := 0; c < 256; c++ {
		if count[c] > 0 {
			x.Occ[byte(c)] = make([]int32, n)
		}
	}
	for i, c := range bwt {
		if i > 0 {
			for _, occ := range x.Occ {
				occ[i] = occ[i-1]
			}
		}
		x.Occ[c][i]++
	}

	return x
}

// suffixArray sorts the suffix start positions of t by prefix doubling:
// each round sorts by the first 2k symbols using the ranks of the previous
// round, until all ranks are distinct.
func suffixArray(t []byte) []int32 {
	n := len(t)
	sa := make([]int32, n)
	rank := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int(t[i])
	}

	for k := 1; ; k *= 2 {
		less := func(a, b int32) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := -1, -1
			if int(a)+k < n {
				ra = rank[int(a)+k]
			}
			if int(b)+k < n {
				rb = rank[int(b)+k]
			}
			return ra < rb
		}
		sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if less(sa[i-1], sa[i]) {
				next[sa[i]]++
			}
		}
		copy(rank, next)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa
}
