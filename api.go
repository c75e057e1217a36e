package symdel

import "cloudeng.io/logging/ctxlog"

// Within reports every pair of strings in ss whose Levenshtein distance is
// at most k (spec.md §6 symdel_within): the result is sorted by (i, j)
// with i < j. If zeroIndex is false, both indices are incremented by 1 at
// serialization time.
func Within(ss []string, k int, zeroIndex bool, opts ...Option) (Triplets, error) {
	o := newOptions(opts)

	if err := validateASCII(ss); err != nil {
		return nil, err
	}
	if err := validateK(k); err != nil {
		return nil, err
	}

	ctxlog.Debug(o.ctx, "symdel: index build started", "n", len(ss), "k", k)
	ix, err := buildIndexParallel(ss, k)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: index build finished", "n", len(ss))

	pairs, err := joinWithinParallel(ix)
	if err != nil {
		return nil, err
	}
	ctxlog.Debug(o.ctx, "symdel: within-set candidates emitted", "n", len(pairs))

	triplets, err := verifyWithinParallel(ss, pairs, k)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: within-set verification finished", "kept", len(triplets))

	sortTriplets(triplets)
	return applyIndexOffset(triplets, zeroIndex), nil
}

// Cross reports every pair (q, r) with q from query and r from reference
// whose Levenshtein distance is at most k (spec.md §6 symdel_cross): the
// result is sorted by (i, j). If zeroIndex is false, both indices are
// incremented by 1 at serialization time.
//
// Cross builds an index over each side, then joins them with
// joinCrossParallel, which iterates whichever index has fewer keys and
// probes the other (the same join Cached.Cross uses).
func Cross(query, reference []string, k int, zeroIndex bool, opts ...Option) (Triplets, error) {
	o := newOptions(opts)

	if err := validateASCII(query); err != nil {
		return nil, err
	}
	if err := validateASCII(reference); err != nil {
		return nil, err
	}
	if err := validateK(k); err != nil {
		return nil, err
	}

	ctxlog.Debug(o.ctx, "symdel: reference index build started", "n", len(reference), "k", k)
	rix, err := buildIndexParallel(reference, k)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(o.ctx, "symdel: query index build started", "n", len(query), "k", k)
	qix, err := buildIndexParallel(query, k)
	if err != nil {
		return nil, err
	}

	pairs, err := joinCrossParallel(qix, rix)
	if err != nil {
		return nil, err
	}
	ctxlog.Debug(o.ctx, "symdel: cross candidates emitted", "n", len(pairs))

	triplets, err := verifyCrossParallel(query, reference, pairs, k)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: cross verification finished", "kept", len(triplets))

	sortTriplets(triplets)
	return applyIndexOffset(triplets, zeroIndex), nil
}
