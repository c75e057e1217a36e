package symdel

import (
	"cloudeng.io/logging/ctxlog"
)

// Cached is the memoization façade of spec.md §4.6: an immutable handle
// over a built reference index that can be queried repeatedly without
// rebuilding it. Grounded on original_source/python/nearust/_symdel.py's
// CachedSymdel, which holds the same (reference strings, k_max, index)
// triple and dispatches symdel() to one of three internal entry points
// depending on what's passed as the counterpart; and on
// solrac97gr-DuplicateCheck/hybrid.go's LSHIndex, built once via
// BuildIndex and queried many times thereafter.
//
// A Cached value is safe for concurrent read access from multiple
// goroutines once NewCached has returned: nothing below ever mutates s,
// kMax, or ix after construction.
type Cached struct {
	s    []string
	kMax int
	ix   *index
}

// NewCached builds a reference index over ref at depth kMax. The index may
// then be queried at any k_call <= kMax via Within, Cross, or CrossCached
// without rebuilding.
func NewCached(ref []string, kMax int, opts ...Option) (*Cached, error) {
	o := newOptions(opts)

	if err := validateASCII(ref); err != nil {
		return nil, err
	}
	if err := validateK(kMax); err != nil {
		return nil, err
	}

	ctxlog.Debug(o.ctx, "symdel: cached index build started", "n", len(ref), "k_max", kMax)
	ix, err := buildIndexParallel(ref, kMax)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: cached index build finished", "n", len(ref), "k_max", kMax)

	return &Cached{s: ref, kMax: kMax, ix: ix}, nil
}

// Within runs the within-set join (spec.md §4.3) over the handle's stored
// reference collection, verifying at kCall <= k_max.
func (c *Cached) Within(kCall int, zeroIndex bool, opts ...Option) (Triplets, error) {
	o := newOptions(opts)

	if err := validateKCall(kCall, c.kMax); err != nil {
		return nil, err
	}

	pairs, err := joinWithinParallel(c.ix)
	if err != nil {
		return nil, err
	}
	ctxlog.Debug(o.ctx, "symdel: within-set candidates emitted", "n", len(pairs))

	triplets, err := verifyWithinParallel(c.s, pairs, kCall)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: within-set verification finished", "kept", len(triplets))

	sortTriplets(triplets)
	return applyIndexOffset(triplets, zeroIndex), nil
}

// Cross runs the cross-set join (spec.md §4.6 "cross against raw query")
// between query and the handle's stored reference: query's deletion
// variants are generated and indexed on the fly at depth kCall, then
// joined against the stored reference index.
func (c *Cached) Cross(query []string, kCall int, zeroIndex bool, opts ...Option) (Triplets, error) {
	o := newOptions(opts)

	if err := validateASCII(query); err != nil {
		return nil, err
	}
	if err := validateKCall(kCall, c.kMax); err != nil {
		return nil, err
	}

	ctxlog.Debug(o.ctx, "symdel: query index build started", "n", len(query), "k_call", kCall)
	qix, err := buildIndexParallel(query, kCall)
	if err != nil {
		return nil, err
	}

	pairs, err := joinCrossParallel(qix, c.ix)
	if err != nil {
		return nil, err
	}
	ctxlog.Debug(o.ctx, "symdel: cross candidates emitted", "n", len(pairs))

	triplets, err := verifyCrossParallel(query, c.s, pairs, kCall)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: cross verification finished", "kept", len(triplets))

	sortTriplets(triplets)
	return applyIndexOffset(triplets, zeroIndex), nil
}

// CrossCached runs the cross-set join between two already-built handles
// (spec.md §4.6 "cross against another cached handle"), bypassing the
// variant generator and index build entirely on both sides.
func (c *Cached) CrossCached(other *Cached, kCall int, zeroIndex bool, opts ...Option) (Triplets, error) {
	o := newOptions(opts)

	if err := validateKCall(kCall, c.kMax); err != nil {
		return nil, err
	}
	if err := validateKCall(kCall, other.kMax); err != nil {
		return nil, err
	}

	pairs, err := joinCrossParallel(other.ix, c.ix)
	if err != nil {
		return nil, err
	}
	ctxlog.Debug(o.ctx, "symdel: cross-cached candidates emitted", "n", len(pairs))

	triplets, err := verifyCrossParallel(other.s, c.s, pairs, kCall)
	if err != nil {
		return nil, err
	}
	ctxlog.Info(o.ctx, "symdel: cross-cached verification finished", "kept", len(triplets))

	sortTriplets(triplets)
	return applyIndexOffset(triplets, zeroIndex), nil
}
