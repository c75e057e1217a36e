package symdel

import (
	"fmt"
	"runtime"

	cerrors "cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

// optimalWorkerCount sizes the worker pool by dataset size and available
// parallelism, the same three-tier policy
// solrac97gr-DuplicateCheck/levenshtein.go's getOptimalWorkerCount uses:
// a couple of workers for small inputs to avoid scheduling overhead, all
// cores for medium inputs, and mild oversubscription (capped at 16) for
// large inputs.
func optimalWorkerCount(n int) int {
	cpus := runtime.NumCPU()

	if n < 200 {
		if cpus < 2 {
			return cpus
		}
		return 2
	}
	if n < 1000 {
		return cpus
	}

	w := cpus * 2
	if w > 16 {
		w = 16
	}
	return w
}

// shardRanges splits [0, n) into up to workers contiguous, roughly equal
// ranges, skipping empty shards when n < workers.
func shardRanges(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers <= 0 {
		return nil
	}
	base := n / workers
	rem := n % workers
	out := make([][2]int, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, [2]int{start, start + size})
		start += size
	}
	return out
}

// recoverToResourceError converts a panic raised during index build or
// candidate accumulation (the two allocation-heavy phases spec.md §7
// calls out as able to fail with "allocator failure") into a reported
// ErrResourceExhaustion rather than crashing the caller.
func recoverToResourceError(errs *cerrors.M) {
	if r := recover(); r != nil {
		errs.Append(fmt.Errorf("%w: %v", ErrResourceExhaustion, r))
	}
}

// buildIndexParallel implements spec.md §5 phase 1: shard [0,N) into
// chunks, build a partial index per chunk on its own goroutine, then merge
// the partial tables in a reduction tree (here a simple linear fold, since
// merges are cheap map-append operations dominated by the build itself).
func buildIndexParallel(ss []string, k int) (*index, error) {
	n := len(ss)
	ix := newIndex(n)
	if n == 0 {
		return ix, nil
	}

	workers := optimalWorkerCount(n)
	ranges := shardRanges(n, workers)

	partials := make([]*index, len(ranges))
	var g errgroup.T
	bounded := errgroup.WithConcurrency(&g, workers)
	errs := newAggregator()

	for shard, r := range ranges {
		shard, r := shard, r
		bounded.Go(func() (err error) {
			defer recoverToResourceError(errs)
			local := newIndex(r[1] - r[0])
			local.build(ss[r[0]:r[1]], k)
			partials[shard] = local
			return nil
		})
	}
	if err := bounded.Wait(); err != nil {
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	for _, p := range partials {
		ix.mergeFrom(p)
	}
	return ix, nil
}

// joinWithinParallel implements spec.md §5 phase 2 for the within-set
// case: the index's key set is sharded across workers, each producing a
// local candidate list; a final serial pass unions and dedups them (the
// "single deduplicating set" spec.md describes — a shared concurrent map
// would need as much synchronization as just doing the last fold serially,
// since every candidate must still pass through one dedup check).
func joinWithinParallel(ix *index) ([]withinPair, error) {
	keys := make([]string, 0, len(ix.buckets))
	for k := range ix.buckets {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	workers := optimalWorkerCount(len(keys))
	ranges := shardRanges(len(keys), workers)

	locals := make([][]withinPair, len(ranges))
	var g errgroup.T
	bounded := errgroup.WithConcurrency(&g, workers)
	errs := newAggregator()

	for shard, r := range ranges {
		shard, r := shard, r
		bounded.Go(func() (err error) {
			defer recoverToResourceError(errs)
			var out []withinPair
			for _, key := range keys[r[0]:r[1]] {
				postings := ix.buckets[key]
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
						out = append(out, withinPair{a: i, b: j})
					}
				}
			}
			locals[shard] = out
			return nil
		})
	}
	if err := bounded.Wait(); err != nil {
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	seen := make(map[withinPair]struct{})
	var out []withinPair
	for _, local := range locals {
		for _, p := range local {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out, nil
}

// verifyWithinParallel implements spec.md §5 phase 3 for within-set
// candidates: the candidate slice is sharded, each worker runs the
// verifier independently, producing a local result vector that is
// concatenated (sorting happens afterwards, in api.go/cache.go).
func verifyWithinParallel(ss []string, pairs []withinPair, k int) (Triplets, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	workers := optimalWorkerCount(len(pairs))
	ranges := shardRanges(len(pairs), workers)

	locals := make([]Triplets, len(ranges))
	var g errgroup.T
	bounded := errgroup.WithConcurrency(&g, workers)
	errs := newAggregator()

	for shard, r := range ranges {
		shard, r := shard, r
		bounded.Go(func() (err error) {
			defer recoverToResourceError(errs)
			var out Triplets
			for _, p := range pairs[r[0]:r[1]] {
				if d, ok := levenshteinWithin(ss[p.a], ss[p.b], k); ok {
					out = append(out, Triplet{I: p.a, J: p.b, D: uint8(d)})
				}
			}
			locals[shard] = out
			return nil
		})
	}
	if err := bounded.Wait(); err != nil {
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var out Triplets
	for _, local := range locals {
		out = append(out, local...)
	}
	return out, nil
}

// joinCrossParallel mirrors joinWithinParallel for the cross-set case
// (spec.md §4.3 "Cross-set join"): it shards the smaller index's keys,
// probing the larger for matches, per the design note in spec.md §9
// ("iterate the other side's variants and probe"). probeFrom's postings
// always supply the q side of each returned pair, whichever index is
// iterated.
func joinCrossParallel(probeFrom, probeInto *index) ([]crossPair, error) {
	if len(probeInto.buckets) < len(probeFrom.buckets) {
		pairs, err := joinCrossParallel(probeInto, probeFrom)
		for n, p := range pairs {
			pairs[n] = crossPair{q: p.r, r: p.q}
		}
		return pairs, err
	}

	keys := make([]string, 0, len(probeFrom.buckets))
	for k := range probeFrom.buckets {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	workers := optimalWorkerCount(len(keys))
	ranges := shardRanges(len(keys), workers)

	locals := make([][]crossPair, len(ranges))
	var g errgroup.T
	bounded := errgroup.WithConcurrency(&g, workers)
	errs := newAggregator()

	for shard, r := range ranges {
		shard, r := shard, r
		bounded.Go(func() (err error) {
			defer recoverToResourceError(errs)
			var out []crossPair
			for _, key := range keys[r[0]:r[1]] {
				fromPostings := probeFrom.buckets[key]
				intoPostings := probeInto.lookup([]byte(key))
				if len(intoPostings) == 0 {
					continue
				}
				for _, fp := range fromPostings {
					for _, ip := range intoPostings {
						out = append(out, crossPair{q: fp.idx, r: ip.idx})
					}
				}
			}
			locals[shard] = out
			return nil
		})
	}
	if err := bounded.Wait(); err != nil {
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	seen := make(map[crossPair]struct{})
	var out []crossPair
	for _, local := range locals {
		for _, p := range local {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out, nil
}

// verifyCrossParallel mirrors verifyWithinParallel for ordered (q, r)
// candidate pairs drawn from two distinct string collections.
func verifyCrossParallel(q, ref []string, pairs []crossPair, k int) (Triplets, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	workers := optimalWorkerCount(len(pairs))
	ranges := shardRanges(len(pairs), workers)

	locals := make([]Triplets, len(ranges))
	var g errgroup.T
	bounded := errgroup.WithConcurrency(&g, workers)
	errs := newAggregator()

	for shard, r := range ranges {
		shard, r := shard, r
		bounded.Go(func() (err error) {
			defer recoverToResourceError(errs)
			var out Triplets
			for _, p := range pairs[r[0]:r[1]] {
				if d, ok := levenshteinWithin(q[p.q], ref[p.r], k); ok {
					out = append(out, Triplet{I: p.q, J: p.r, D: uint8(d)})
				}
			}
			locals[shard] = out
			return nil
		})
	}
	if err := bounded.Wait(); err != nil {
		errs.Append(err)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var out Triplets
	for _, local := range locals {
		out = append(out, local...)
	}
	return out, nil
}
