package symdel

import (
	"errors"
	"fmt"

	cerrors "cloudeng.io/errors"
)

// ErrEncoding is returned (wrapped) when an input string contains a byte
// outside the 7-bit ASCII range.
var ErrEncoding = errors.New("symdel: input encoding error")

// ErrConfiguration is returned (wrapped) when a call's requested bound is
// incompatible with a cached handle's bound, or is otherwise invalid.
var ErrConfiguration = errors.New("symdel: configuration error")

// ErrResourceExhaustion is returned (wrapped) when the engine cannot
// allocate the memory it needs to build an index or accumulate candidates.
var ErrResourceExhaustion = errors.New("symdel: resource exhaustion")

// EncodingError identifies the offending string and byte position of a
// non-ASCII input, satisfying spec.md's "fails with an input-validation
// error identifying the offending string and byte position".
type EncodingError struct {
	StringIndex int // index of the offending string within its collection
	BytePos     int // byte offset of the offending byte within that string
	Byte        byte // the offending byte value
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("symdel: non-ASCII byte 0x%02x at string %d, byte %d", e.Byte, e.StringIndex, e.BytePos)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// ConfigurationError reports an invalid bound combination: either a
// negative k, or a per-call k_call exceeding a cached handle's k_max.
type ConfigurationError struct {
	KCall int
	KMax  int
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("symdel: configuration error: %s (k_call=%d, k_max=%d)", e.Msg, e.KCall, e.KMax)
	}
	return fmt.Sprintf("symdel: configuration error: k_call=%d exceeds k_max=%d", e.KCall, e.KMax)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// newAggregator returns an empty multi-error collector. Parallel phases
// (parallel.go) append into it concurrently; a nil error is returned by
// Err() if nothing failed, matching cloudeng.io/errors.M's contract.
func newAggregator() *cerrors.M {
	return &cerrors.M{}
}
