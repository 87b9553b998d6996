package treap

// node is a single tree node. Nodes are never mutated after construction:
// every structural change rebuilds the nodes along the affected path and
// shares the untouched subtrees with the previous version of the tree.
type node[K, V any] struct {
	key      K
	value    V
	priority uint64 // Maintains max-heap property for BST structure
	size     int    // Subtree size including self
	left     *node[K, V]
	right    *node[K, V]
}

// newNode builds a node over the given children and derives its subtree size
// from theirs. Size is computed once here because nodes are immutable.
func newNode[K, V any](key K, priority uint64, value V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:      key,
		value:    value,
		priority: priority,
		size:     1 + nodeSize(left) + nodeSize(right),
		left:     left,
		right:    right,
	}
}

// nodeSize gracefully handles nil nodes to avoid nil checks in recursive functions.
func nodeSize[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

// siftDown restores heap order below n after an update lowered its priority
// in place. The node is rotated beneath whichever child carries the higher
// priority until both children fit under it again. Rotations preserve key
// order; only the nodes on the rotation path are rebuilt.
func siftDown[K, V any](n *node[K, V]) *node[K, V] {
	left, right := n.left, n.right

	switch {
	case left != nil && left.priority > n.priority &&
		(right == nil || left.priority >= right.priority):
		// Rotate right: n is demoted into the left child's old right slot
		// and may still violate heap order further down.
		demoted := siftDown(newNode(n.key, n.priority, n.value, left.right, n.right))
		return newNode(left.key, left.priority, left.value, left.left, demoted)
	case right != nil && right.priority > n.priority:
		// Symmetric left rotation.
		demoted := siftDown(newNode(n.key, n.priority, n.value, n.left, right.left))
		return newNode(right.key, right.priority, right.value, demoted, right.right)
	default:
		return n
	}
}
