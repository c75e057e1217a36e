package symdel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBuildAndLookup(t *testing.T) {
	ix := newIndex(3)
	ix.build([]string{"fizz", "fuzz", "buzz"}, 1)

	postings := ix.lookup([]byte("fiz"))
	require.Len(t, postings, 1)
	assert.Equal(t, 0, postings[0].idx)

	postings = ix.lookup([]byte("uzz"))
	assert.Len(t, postings, 2, "uzz is a depth-1 deletion of both fuzz and buzz")
}

func TestIndexLookupMiss(t *testing.T) {
	ix := newIndex(1)
	ix.build([]string{"fizz"}, 1)
	assert.Nil(t, ix.lookup([]byte("nope")))
}

func TestIndexMergeFromConcatenatesPostings(t *testing.T) {
	a := newIndex(1)
	a.build([]string{"fizz"}, 1)
	b := newIndex(1)
	b.build([]string{"fuzz"}, 1)

	a.mergeFrom(b)

	postings := a.lookup([]byte("fzz"))
	assert.Len(t, postings, 2, "fzz is a depth-1 deletion of both fizz (remove i) and fuzz (remove u)")

	postings = a.lookup([]byte("fiz"))
	assert.Len(t, postings, 1, "fiz is only reachable from fizz")
}
