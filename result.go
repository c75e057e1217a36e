package symdel

import "golang.org/x/exp/slices"

// Triplet is a single verified neighbour pair: Levenshtein(A[I], B[J]) == D
// and D <= the bound the caller requested. For within-set results I < J;
// for cross-set results I indexes the query collection and J the
// reference collection.
type Triplet struct {
	I int
	J int
	D uint8
}

// Triplets is a sorted collection of Triplet, ordered lexicographically by
// (I, J) per spec.md §4.5/§5. The zero value is an empty, valid Triplets.
type Triplets []Triplet

// Arrays returns the same data as three parallel slices, for callers that
// prefer that shape over a slice of structs — spec.md §9 leaves the choice
// of result shape open; this offers both without forcing every caller
// through a conversion (see SPEC_FULL.md §5).
func (t Triplets) Arrays() (i, j []int, d []uint8) {
	i = make([]int, len(t))
	j = make([]int, len(t))
	d = make([]uint8, len(t))
	for n, tr := range t {
		i[n], j[n], d[n] = tr.I, tr.J, tr.D
	}
	return i, j, d
}

// sortTriplets sorts t in place by (I, J), the deterministic ordering
// spec.md §5 requires regardless of which order parallel workers produced
// results in. Grounded on johnjansen-torua/cmd/coordinator/main.go's use
// of golang.org/x/exp/slices for a final deterministic sort step.
func sortTriplets(t Triplets) {
	slices.SortFunc(t, func(a, b Triplet) int {
		if a.I != b.I {
			return a.I - b.I
		}
		return a.J - b.J
	})
}

// applyIndexOffset adds 1 to every I and J if zeroIndex is false, per
// spec.md §6 ("If zero_index is false, both i and j are incremented by
// 1"). This is applied at serialization time only, after sorting on the
// zero-based indices.
func applyIndexOffset(t Triplets, zeroIndex bool) Triplets {
	if zeroIndex {
		return t
	}
	out := make(Triplets, len(t))
	for n, tr := range t {
		out[n] = Triplet{I: tr.I + 1, J: tr.J + 1, D: tr.D}
	}
	return out
}
