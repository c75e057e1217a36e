package symdel

// posting is a (string index, deletion depth) record filed under a variant
// key, per spec.md's data model.
type posting struct {
	idx   int
	depth uint8
}

// variant is a deletion-variant byte sequence together with the smallest
// depth at which it was produced from its source string.
type variant struct {
	bytes []byte
	depth uint8
}

// generateVariants emits every distinct byte sequence obtainable by
// deleting 0..min(k, len(s)) bytes from s, deduplicated so that each
// distinct byte sequence appears once under the smallest depth that
// produces it. The depth-0 variant (s itself) is always included.
//
// This is grounded on the recursive/queue-based delete-variant generation
// in az-ai-labs-az-lang-nlp/spell/symspell.go's generateDeletes, adapted
// from runes to bytes (ASCII-only input, per spec.md) and extended to
// retain s itself at depth 0 as the spec requires.
func generateVariants(s string, k int) []variant {
	n := len(s)
	if k > n {
		k = n
	}

	// A variant's length is |s|-depth, so a given byte sequence can only
	// ever be produced at one depth; distinct deletion patterns reaching
	// the same depth are the only source of duplicates.
	seen := make(map[string]struct{}, estimateFanout(n, k))
	var out []variant

	emit := func(b []byte, depth uint8) {
		key := string(b)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		cp := make([]byte, len(b))
		copy(cp, b)
		out = append(out, variant{bytes: cp, depth: depth})
	}

	emit([]byte(s), 0)

	scratch := make([]byte, 0, n)
	var descend func(remaining []byte, start int, depth int)
	descend = func(remaining []byte, start int, depth int) {
		if depth >= k {
			return
		}
		for pos := start; pos < len(remaining); pos++ {
			scratch = scratch[:0]
			scratch = append(scratch, remaining[:pos]...)
			scratch = append(scratch, remaining[pos+1:]...)
			next := make([]byte, len(scratch))
			copy(next, scratch)
			emit(next, uint8(depth+1))
			descend(next, pos, depth+1)
		}
	}
	descend([]byte(s), 0, 0)

	return out
}

// estimateFanout bounds the expected number of distinct variants of a
// length-n string at depth k: sum_{d=0..k} C(n,d), capped to avoid
// pathological pre-allocation for large n with a small k.
func estimateFanout(n, k int) int {
	total := 1
	c := 1
	for d := 1; d <= k && d <= n; d++ {
		c = c * (n - d + 1) / d
		total += c
		if total > 4096 {
			return 4096
		}
	}
	return total
}
