package symdel

// withinPair is the canonical (min, max) form of an unordered within-set
// candidate pair, per spec.md §4.3.
type withinPair struct {
	a, b int // a < b
}

// crossPair is an ordered (query index, reference index) candidate pair.
type crossPair struct {
	q, r int
}

// joinWithin emits every unordered candidate pair reachable by two
// postings sharing a variant key, deduplicated globally.
//
// Grounded on solrac97gr-DuplicateCheck/hybrid.go's findCandidates/
// FindDuplicates, which dedups emitted pairs through a checked map keyed
// by a canonical pair identity; here the canonical form is the (min, max)
// index pair spec.md §4.3 specifies directly, rather than the teacher's
// string-concatenated product-ID key.
func joinWithin(ix *index) []withinPair {
	seen := make(map[withinPair]struct{})
	var out []withinPair

	for _, postings := range ix.buckets {
		if len(postings) < 2 {
			continue
		}
		for a := 0; a < len(postings); a++ {
			for b := a + 1; b < len(postings); b++ {
				i, j := postings[a].idx, postings[b].idx
				if i == j {
					continue
				}
				if i > j {
					i, j = j, i
				}
				p := withinPair{a: i, b: j}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}

// joinCross emits the cartesian product of postings sharing a variant key
// between a query index and a reference index, deduplicated globally.
//
// Per spec.md's design note "Cross-join direction", iterating the smaller
// index's keys and probing the larger is more efficient when one side is
// much bigger. joinCross itself always iterates probeFrom's keys; the
// parallel variant used by cache.go and api.go (joinCrossParallel) is the
// one that picks the smaller side.
func joinCross(probeFrom, probeInto *index) []crossPair {
	seen := make(map[crossPair]struct{})
	var out []crossPair

	for key, fromPostings := range probeFrom.buckets {
		intoPostings := probeInto.lookup([]byte(key))
		if len(intoPostings) == 0 {
			continue
		}
		for _, fp := range fromPostings {
			for _, ip := range intoPostings {
				p := crossPair{q: fp.idx, r: ip.idx}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}
