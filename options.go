package symdel

import "context"

// Option configures an entry-point call or a Cached handle's construction.
// Modeled on the small functional-options style of
// solrac97gr-DuplicateCheck's ComparisonWeights/DefaultWeights, generalized
// from a plain struct to the functional-option form since symdel's only
// current option is an optional logging context rather than a set of
// tunable weights.
type Option func(*options)

type options struct {
	ctx context.Context
}

func newOptions(opts []Option) *options {
	o := &options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContext threads a context.Context through a call, carrying a logger
// installed via cloudeng.io/logging/ctxlog.WithLogger. Phase-boundary log
// lines (index build started/finished, candidate and verified counts) are
// emitted at Debug/Info level against the logger found on this context; a
// context with no installed logger yields a discard logger, so logging is
// zero-cost unless a caller opts in.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
