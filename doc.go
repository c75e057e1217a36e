// Package symdel detects all pairs of short ASCII strings whose Levenshtein
// edit distance is at most a small bound k (typically 1-3), across
// collections that may contain millions of strings.
//
// # Overview
//
// symdel is a Go implementation of the symmetric-deletion (symdel) join
// algorithm: instead of comparing every pair of strings directly (O(N^2)),
// it enumerates every deletion variant of every string up to depth k, groups
// strings that share a variant, and verifies each resulting candidate pair
// by direct edit-distance computation. Only candidate pairs whose exact
// Levenshtein distance is at most k are reported.
//
// # Core Features
//
//   - Within-set and cross-set neighbour joins: Within and Cross.
//   - Memoized reference indices for repeated queries: Cached.
//   - Deterministic, sorted (i, j, d) output regardless of internal
//     parallel execution order.
//   - Automatic sharded/parallel execution across index build, candidate
//     emission, and verification phases.
//   - ASCII-only input with explicit, positioned validation errors.
//
// # Quick Start
//
// ## Within one collection
//
//	triplets, err := symdel.Within([]string{"fizz", "fuzz", "buzz"}, 1, true)
//	// triplets = [{I:0 J:1 D:1} {I:1 J:2 D:1}]
//
// ## Across two collections
//
//	triplets, err := symdel.Cross(query, reference, 1, true)
//
// ## Repeated queries against one large reference
//
//	cached, err := symdel.NewCached(reference, 2)
//	triplets, err := cached.Cross(query, 1, true)
//	within, err := cached.Within(1, true)
//
// # Algorithm Notes
//
// For a string s and bound k, the generator (variant.go) emits every
// distinct substring reachable by deleting 0..min(k, len(s)) characters,
// deduplicated per source string so that each distinct byte sequence is
// filed once, under its smallest observed deletion depth. The index
// (index.go) maps variant bytes to posting lists of (string index, depth).
// The join (join.go) emits a candidate pair whenever two postings share a
// key; a global set deduplicates candidates across keys. The verifier
// (verify.go) computes the exact edit distance for each candidate using a
// two-row DP restricted to a diagonal band of width 2k+1, discarding
// candidates whose length difference alone exceeds k.
//
// Unicode handling, approximate/probabilistic matching, transposition
// (Damerau-Levenshtein), edit distances larger than roughly 8, and
// persistent on-disk indices are out of scope.
package symdel
