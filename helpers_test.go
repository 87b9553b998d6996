package treap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants walks every node of the tree and fails the test if the
// search order, heap order, key uniqueness, or cached subtree sizes are
// violated anywhere. The global in-order check subsumes per-subtree key
// bounds: a strictly ascending traversal implies both search order and
// uniqueness.
func requireInvariants[K, V any](t *testing.T, tree Tree[K, V]) {
	t.Helper()

	requireNodeInvariants(t, tree.root)

	var (
		prev    K
		visited int
	)

	for key := range tree.All() {
		if visited > 0 {
			require.Negativef(t, tree.cmp(prev, key),
				"in-order keys not strictly ascending: %v then %v", prev, key)
		}

		prev = key
		visited++
	}

	require.Equal(t, tree.Len(), visited, "Len() disagrees with traversal")
}

// requireNodeInvariants checks heap order against each direct child and the
// cached size of every node.
func requireNodeInvariants[K, V any](t *testing.T, n *node[K, V]) {
	t.Helper()

	if n == nil {
		return
	}

	if n.left != nil {
		require.GreaterOrEqual(t, n.priority, n.left.priority,
			"heap order violated on left child")
	}

	if n.right != nil {
		require.GreaterOrEqual(t, n.priority, n.right.priority,
			"heap order violated on right child")
	}

	require.Equal(t, 1+nodeSize(n.left)+nodeSize(n.right), n.size,
		"cached subtree size out of sync")

	requireNodeInvariants(t, n.left)
	requireNodeInvariants(t, n.right)
}

// requireSameShape fails unless the two subtrees are structurally
// identical: same nodes in the same positions with equal keys, priorities,
// and values.
func requireSameShape[K, V any](t *testing.T, a, b *node[K, V]) {
	t.Helper()

	if a == nil || b == nil {
		require.Equal(t, a == nil, b == nil, "one of the subtrees is missing a node")
		return
	}

	require.Equal(t, a.key, b.key)
	require.Equal(t, a.priority, b.priority)
	require.Equal(t, a.value, b.value)

	requireSameShape(t, a.left, b.left)
	requireSameShape(t, a.right, b.right)
}

// itemKeys projects a slice of items to its keys.
func itemKeys[K, V any](items []Item[K, V]) []K {
	keys := make([]K, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key)
	}

	return keys
}
