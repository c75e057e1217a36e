package symdel

// index is the variant index of spec.md §4.2: a hash table from variant
// byte sequences to posting lists. It is built once (build) and then only
// read (lookup); this mirrors solrac97gr-DuplicateCheck/hybrid.go's
// LSHIndex, which is likewise constructed once via BuildIndex and queried
// repeatedly thereafter.
//
// Keys are stored as strings (Go strings already intern their backing
// bytes immutably, giving us the "owned byte sequence" storage spec.md
// asks for without a separate small-string optimization layer).
type index struct {
	buckets map[string][]posting
}

// newIndex allocates an index sized for n source strings.
func newIndex(n int) *index {
	return &index{buckets: make(map[string][]posting, n*2)}
}

// build runs the deletion-variant generator over every string in ss and
// files each (index, depth) posting under its variant key. Strings that
// appear only once in the final index are retained rather than pruned
// early, per spec.md §4.2 ("dropping them early is an acceptable
// optimization" — we choose not to take it, keeping build() a pure
// one-pass function that callers in parallel.go can shard trivially).
func (ix *index) build(ss []string, k int) {
	for i, s := range ss {
		for _, v := range generateVariants(s, k) {
			key := string(v.bytes)
			ix.buckets[key] = append(ix.buckets[key], posting{idx: i, depth: v.depth})
		}
	}
}

// lookup returns the posting list filed under variant key v, or nil if
// none exists.
func (ix *index) lookup(v []byte) []posting {
	return ix.buckets[string(v)]
}

// mergeFrom concatenates another index's posting lists into ix. Used by
// parallel.go's reduction tree to combine per-shard partial indices; order
// within a merged posting list is shard-deterministic but not
// source-order-deterministic, which spec.md §5 states is acceptable
// because downstream candidate dedup is position-insensitive.
func (ix *index) mergeFrom(other *index) {
	for key, postings := range other.buckets {
		ix.buckets[key] = append(ix.buckets[key], postings...)
	}
}
