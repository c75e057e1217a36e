package symdel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinWithinExactDistance(t *testing.T) {
	tests := []struct {
		a, b string
		k    int
		want int
		ok   bool
	}{
		{"fizz", "fuzz", 1, 1, true},
		{"fizz", "buzz", 1, 0, false}, // distance 2, exceeds k=1
		{"fizz", "buzz", 2, 2, true},
		{"kitten", "sitting", 3, 3, true},
		{"kitten", "sitting", 2, 0, false},
		{"", "", 0, 0, true},
		{"", "abc", 3, 3, true},
		{"", "abc", 2, 0, false},
		{"abc", "abc", 0, 0, true},
	}

	for _, tt := range tests {
		d, ok := levenshteinWithin(tt.a, tt.b, tt.k)
		assert.Equal(t, tt.ok, ok, "%q vs %q k=%d", tt.a, tt.b, tt.k)
		if ok {
			assert.Equal(t, tt.want, d, "%q vs %q k=%d", tt.a, tt.b, tt.k)
		}
	}
}

func TestLevenshteinWithinSymmetric(t *testing.T) {
	d1, ok1 := levenshteinWithin("fizz", "buzz", 3)
	d2, ok2 := levenshteinWithin("buzz", "fizz", 3)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, d1, d2)
}

func TestLevenshteinWithinNegativeKRejected(t *testing.T) {
	_, ok := levenshteinWithin("a", "b", -1)
	assert.False(t, ok)
}

func TestLevenshteinWithinRowPoolReuse(t *testing.T) {
	// Exercises getRow/putRow across many calls of varying band size,
	// mostly to confirm the pool doesn't corrupt state between uses.
	for i := 0; i < 64; i++ {
		d, ok := levenshteinWithin("fizz", "fuzz", 1)
		assert.True(t, ok)
		assert.Equal(t, 1, d)
	}
}
