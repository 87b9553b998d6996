package treap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreap_RankSelect(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "ab", "abc", "b", "ba", "z", "aa", "aaa"}

	tr := New[string, struct{}]()
	for _, k := range keys {
		tr = tr.Put(k, struct{}{})
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	require.Equal(t, len(sorted), tr.Len())

	// Select must return sorted order.
	for i, want := range sorted {
		k, _, ok := tr.Select(i)
		require.Truef(t, ok, "Select(%d) must succeed", i)
		assert.Equal(t, want, k)
	}

	// Rank must align with sorted positions.
	for i, k := range sorted {
		assert.Equalf(t, i, tr.Rank(k), "Rank(%q)", k)
	}

	// Rank of an absent key counts the keys below it.
	assert.Equal(t, 0, tr.Rank(""))
	assert.Equal(t, len(sorted), tr.Rank("zz"))
}

func TestTreap_SelectOutOfRange(t *testing.T) {
	t.Parallel()

	tr := New[int, string]().Put(1, "a").Put(2, "b")

	for _, i := range []int{-1, 2, 100} {
		_, _, ok := tr.Select(i)
		assert.Falsef(t, ok, "Select(%d) must report out of range", i)
	}

	_, _, ok := New[int, string]().Select(0)
	assert.False(t, ok, "Select on an empty treap must fail")
}

// TestTreap_RankSelectAfterDelete checks that order statistics stay
// consistent across deletions.
func TestTreap_RankSelectAfterDelete(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "aa", "aaa", "ab", "abc", "b", "ba", "z"}

	tr := New[string, struct{}]()
	for _, k := range keys {
		tr = tr.Put(k, struct{}{})
	}

	tr = tr.Delete("ab")
	tr = tr.Delete("z")

	want := []string{"a", "aa", "aaa", "abc", "b", "ba"}
	require.Equal(t, len(want), tr.Len())

	for i, k := range want {
		got, _, ok := tr.Select(i)
		require.Truef(t, ok, "Select(%d) after delete", i)
		assert.Equal(t, k, got)
		assert.Equal(t, i, tr.Rank(k))
	}

	requireInvariants(t, tr.Tree())
}
