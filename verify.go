package symdel

import "sync"

// rowPool reuses []int row buffers for the banded Levenshtein DP, the same
// shape as solrac97gr-DuplicateCheck/levenshtein.go's intSlicePool /
// getIntSlice / putIntSlice. Each row is len(longer string)+1 cells long;
// only the cells inside the diagonal band are computed, the rest hold a
// "too far" sentinel.
var rowPool = sync.Pool{
	New: func() interface{} {
		s := make([]int, 0, 64)
		return &s
	},
}

func getRow(n int) []int {
	p := rowPool.Get().(*[]int)
	row := *p
	if cap(row) < n {
		row = make([]int, n)
	} else {
		row = row[:n]
	}
	return row
}

func putRow(row []int) {
	if cap(row) <= 4096 {
		rowPool.Put(&row)
	}
}

// levenshteinWithin computes the exact Levenshtein distance between a and
// b using a two-row DP restricted to a diagonal band of width 2k+1,
// aborting early once the minimum value on the current row exceeds k. It
// returns (distance, true) if the distance is <= k, or (_, false)
// otherwise — cells outside the band are never compared against a real
// distance, only used internally as a "too far" sentinel.
//
// Grounded on solrac97gr-DuplicateCheck/levenshtein.go's
// computeDistanceWithThreshold (two-row DP, pooled row buffers, early
// length-difference rejection) and
// az-ai-labs-az-lang-nlp/spell/symspell.go's damerauLevenshtein (the
// length-difference short-circuit before any DP cell is computed).
// Transposition handling from the latter is intentionally not carried
// over: spec.md's Non-goals exclude Damerau-Levenshtein.
func levenshteinWithin(a, b string, k int) (int, bool) {
	if k < 0 {
		return 0, false
	}

	la, lb := len(a), len(b)
	if la > lb {
		a, b = b, a
		la, lb = lb, la
	}
	if lb-la > k {
		return 0, false
	}

	sentinel := k + 1

	prev := getRow(lb + 1)
	curr := getRow(lb + 1)
	defer putRow(prev)
	defer putRow(curr)

	for j := 0; j <= lb; j++ {
		if j <= k {
			prev[j] = j
		} else {
			prev[j] = sentinel
		}
	}

	for i := 1; i <= la; i++ {
		lo := i - k
		if lo < 0 {
			lo = 0
		}
		hi := i + k
		if hi > lb {
			hi = lb
		}

		for j := 0; j < lo; j++ {
			curr[j] = sentinel
		}
		for j := hi + 1; j <= lb; j++ {
			curr[j] = sentinel
		}

		rowMin := sentinel
		for j := lo; j <= hi; j++ {
			if j == 0 {
				curr[j] = i // base case: delete all of a's prefix, only in-band when i <= k
			} else {
				cost := 0
				if a[i-1] != b[j-1] {
					cost = 1
				}
				del := prev[j] + 1      // delete a[i-1]
				ins := curr[j-1] + 1    // insert b[j-1]
				sub := prev[j-1] + cost // substitute/match

				v := sub
				if del < v {
					v = del
				}
				if ins < v {
					v = ins
				}
				curr[j] = v
			}

			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > k {
			return 0, false
		}

		prev, curr = curr, prev
	}

	d := prev[lb]
	if d > k {
		return d, false
	}
	return d, true
}
