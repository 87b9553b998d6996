package treap

import "cmp"

// Tree is a priority-ordered binary search tree with caller-supplied
// priorities. Keys are unique; priorities form a max-heap over the tree's
// structure. All operations are value-returning and leave the receiver
// untouched, sharing unchanged subtrees with the result.
//
// The zero Tree has no comparison function and must not be used; construct
// trees with NewTree or NewTreeFunc.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  func(K, K) int
}

// NewTree returns an empty tree over the key type's natural order.
func NewTree[K cmp.Ordered, V any]() Tree[K, V] {
	return Tree[K, V]{cmp: cmp.Compare[K]}
}

// NewTreeFunc returns an empty tree ordered by the given comparison
// function. The function must define a total order over K; a non-total
// comparison is a precondition violation and leaves the tree's behavior
// undefined rather than producing a runtime error.
func NewTreeFunc[K, V any](compare func(K, K) int) Tree[K, V] {
	return Tree[K, V]{cmp: compare}
}

// Len returns the number of keys stored in the tree.
func (t Tree[K, V]) Len() int {
	return nodeSize(t.root)
}

// get returns the node holding key, or nil when the key is absent.
func (t Tree[K, V]) get(key K) *node[K, V] {
	for n := t.root; n != nil; {
		switch c := t.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Get returns the value stored under key and whether the key is present.
func (t Tree[K, V]) Get(key K) (V, bool) {
	if n := t.get(key); n != nil {
		return n.value, true
	}

	var zero V

	return zero, false
}

// Has reports whether key is present in the tree.
func (t Tree[K, V]) Has(key K) bool {
	return t.get(key) != nil
}

// Put inserts key with the given priority and value and returns the
// resulting tree. An existing key is updated: its value is replaced and the
// freshly supplied priority takes effect, restructuring the tree exactly as
// a fresh insert would.
func (t Tree[K, V]) Put(key K, priority uint64, value V) Tree[K, V] {
	return Tree[K, V]{root: put(t.cmp, t.root, key, priority, value), cmp: t.cmp}
}

// Delete removes key from the tree if it exists and returns the resulting
// tree. Deleting an absent key is a no-op that returns the tree unchanged.
func (t Tree[K, V]) Delete(key K) Tree[K, V] {
	return Tree[K, V]{root: remove(t.cmp, t.root, key), cmp: t.cmp}
}

// Split partitions the tree around pivot into a tree of keys less than
// pivot and a tree of keys greater than pivot. A node whose key equals the
// pivot is dropped from the result.
func (t Tree[K, V]) Split(pivot K) (Tree[K, V], Tree[K, V]) {
	left, right := split(t.cmp, t.root, pivot)

	return Tree[K, V]{root: left, cmp: t.cmp}, Tree[K, V]{root: right, cmp: t.cmp}
}

// Merge combines the receiver with other into one tree preserving heap
// order. Precondition: every key in the receiver compares less than every
// key in other. The result uses the receiver's comparison function.
func (t Tree[K, V]) Merge(other Tree[K, V]) Tree[K, V] {
	return Tree[K, V]{root: merge(t.root, other.root), cmp: t.cmp}
}

// put descends toward the key's search position until the fresh priority
// dominates the current subtree root; at that point the subtree is split
// around the key and the new node takes its place with the two halves as
// children. Returns the new subtree root.
func put[K, V any](compare func(K, K) int, n *node[K, V], key K, priority uint64, value V) *node[K, V] {
	if n == nil {
		return newNode(key, priority, value, nil, nil)
	}

	if priority > n.priority {
		// A node holding an equal key is discarded by the split, which is
		// what makes this branch double as an update.
		left, right := split(compare, n, key)

		return newNode(key, priority, value, left, right)
	}

	switch c := compare(key, n.key); {
	case c < 0:
		return newNode(n.key, n.priority, n.value,
			put(compare, n.left, key, priority, value), n.right)
	case c > 0:
		return newNode(n.key, n.priority, n.value,
			n.left, put(compare, n.right, key, priority, value))
	default:
		// Update in place. The fresh priority replaces the stored one and
		// may now be lower than a child's, so heap order is restored
		// downward.
		return siftDown(newNode(key, priority, value, n.left, n.right))
	}
}

// split partitions the subtree rooted at n into nodes with keys less than
// pivot and nodes with keys greater than pivot. Only the nodes on the
// search path to pivot are rebuilt.
func split[K, V any](compare func(K, K) int, n *node[K, V], pivot K) (*node[K, V], *node[K, V]) {
	if n == nil {
		return nil, nil
	}

	switch c := compare(n.key, pivot); {
	case c < 0:
		// n and its left subtree belong to the left half.
		left, right := split(compare, n.right, pivot)

		return newNode(n.key, n.priority, n.value, n.left, left), right
	case c > 0:
		left, right := split(compare, n.left, pivot)

		return left, newNode(n.key, n.priority, n.value, right, n.right)
	default:
		// Pivot-equal node is dropped.
		return n.left, n.right
	}
}

// merge joins two subtrees under the precondition that every key in left
// compares less than every key in right. The higher-priority root becomes
// the merged root, recursing into its side that faces the other subtree.
func merge[K, V any](left, right *node[K, V]) *node[K, V] {
	if left == nil {
		return right
	}

	if right == nil {
		return left
	}

	if left.priority >= right.priority {
		return newNode(left.key, left.priority, left.value,
			left.left, merge(left.right, right))
	}

	return newNode(right.key, right.priority, right.value,
		merge(left, right.left), right.right)
}

// remove deletes the node holding key, merging its children into its place.
// Subtrees that do not contain the key are returned as-is, so deleting an
// absent key yields the identical root pointer.
func remove[K, V any](compare func(K, K) int, n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	switch c := compare(key, n.key); {
	case c < 0:
		left := remove(compare, n.left, key)
		if left == n.left {
			return n
		}

		return newNode(n.key, n.priority, n.value, left, n.right)
	case c > 0:
		right := remove(compare, n.right, key)
		if right == n.right {
			return n
		}

		return newNode(n.key, n.priority, n.value, n.left, right)
	default:
		return merge(n.left, n.right)
	}
}
