package symdel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingErrorMessage(t *testing.T) {
	err := &EncodingError{StringIndex: 2, BytePos: 5, Byte: 0x80}
	assert.Contains(t, err.Error(), "0x80")
	assert.Contains(t, err.Error(), "string 2")
	assert.Contains(t, err.Error(), "byte 5")
}

func TestConfigurationErrorMessageVariants(t *testing.T) {
	withMsg := &ConfigurationError{KCall: -1, Msg: "k must be non-negative"}
	assert.Contains(t, withMsg.Error(), "k must be non-negative")

	withoutMsg := &ConfigurationError{KCall: 3, KMax: 2}
	assert.Contains(t, withoutMsg.Error(), "k_call=3")
	assert.Contains(t, withoutMsg.Error(), "k_max=2")
}

func TestAggregatorCollectsMultipleErrors(t *testing.T) {
	agg := newAggregator()
	assert.NoError(t, agg.Err())

	agg.Append(ErrResourceExhaustion)
	agg.Append(ErrResourceExhaustion)
	assert.Error(t, agg.Err())
}
