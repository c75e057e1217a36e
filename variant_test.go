package symdel

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantStrings(vs []variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v.bytes)
	}
	sort.Strings(out)
	return out
}

func TestGenerateVariantsIncludesSourceAtDepthZero(t *testing.T) {
	vs := generateVariants("fizz", 1)
	require.NotEmpty(t, vs)
	assert.Equal(t, "fizz", string(vs[0].bytes))
	assert.Equal(t, uint8(0), vs[0].depth)
}

func TestGenerateVariantsLengthMatchesDepth(t *testing.T) {
	vs := generateVariants("fizz", 2)
	for _, v := range vs {
		assert.Equal(t, 4-int(v.depth), len(v.bytes))
	}
}

func TestGenerateVariantsDedupesWithinSource(t *testing.T) {
	// "ball" has two 'l's: deleting either at depth 1 yields "bal" once.
	vs := generateVariants("ball", 1)
	got := variantStrings(vs)

	count := 0
	for _, s := range got {
		if s == "bal" {
			count++
		}
	}
	assert.Equal(t, 1, count, "bal should appear exactly once: %v", got)
}

func TestGenerateVariantsDepthClampedToLength(t *testing.T) {
	vs := generateVariants("ab", 5)
	for _, v := range vs {
		assert.LessOrEqual(t, int(v.depth), 2)
	}
	// depth 2 must include the empty string.
	found := false
	for _, v := range vs {
		if len(v.bytes) == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected the empty-string variant at depth 2")
}

func TestGenerateVariantsZeroDepth(t *testing.T) {
	vs := generateVariants("fizz", 0)
	require.Len(t, vs, 1)
	assert.Equal(t, "fizz", string(vs[0].bytes))
}

func TestGenerateVariantsEmptyString(t *testing.T) {
	vs := generateVariants("", 2)
	require.Len(t, vs, 1)
	assert.Equal(t, "", string(vs[0].bytes))
}
