package treap

// Rank returns the number of keys in the tree strictly less than key. The
// key itself does not have to be present. Cached subtree sizes keep this
// O(log n) instead of a traversal.
func (t Tree[K, V]) Rank(key K) int {
	var rank int

	for n := t.root; n != nil; {
		// When key sorts into the left subtree the right side contributes
		// nothing to the rank.
		if t.cmp(key, n.key) <= 0 {
			n = n.left
			continue
		}

		rank += 1 + nodeSize(n.left)
		n = n.right
	}

	return rank
}

// Select returns the i-th pair (0-based) in ascending key order. It reports
// false for out-of-range indices. Like Rank, it descends by subtree size in
// O(log n).
func (t Tree[K, V]) Select(i int) (K, V, bool) {
	if i < 0 || i >= nodeSize(t.root) {
		var (
			zeroK K
			zeroV V
		)

		return zeroK, zeroV, false
	}

	for n := t.root; ; {
		leftSize := nodeSize(n.left)

		switch {
		case i < leftSize: // Target is in left subtree
			n = n.left
		case i == leftSize: // Current node is exactly the i-th
			return n.key, n.value, true
		default: // Target is in right subtree (adjust index)
			i -= leftSize + 1
			n = n.right
		}
	}
}
