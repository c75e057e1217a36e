package symdel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateASCIIAccepts(t *testing.T) {
	assert.NoError(t, validateASCII([]string{"fizz", "fuzz", ""}))
}

func TestValidateASCIIRejectsAndLocates(t *testing.T) {
	err := validateASCII([]string{"ok", "bad\xffvalue"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 1, encErr.StringIndex)
	assert.Equal(t, 3, encErr.BytePos)
	assert.Equal(t, byte(0xff), encErr.Byte)
}

func TestValidateKRejectsNegative(t *testing.T) {
	err := validateK(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestValidateKCallRejectsExceedingMax(t *testing.T) {
	err := validateKCall(3, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 3, cfgErr.KCall)
	assert.Equal(t, 2, cfgErr.KMax)
}

func TestValidateKCallAcceptsWithinBound(t *testing.T) {
	assert.NoError(t, validateKCall(2, 2))
	assert.NoError(t, validateKCall(0, 2))
}
