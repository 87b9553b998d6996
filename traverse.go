package treap

import "iter"

// Item is a single key/value pair in the order produced by Items.
type Item[K, V any] struct {
	Key   K
	Value V
}

// Items returns the tree's pairs as a slice in ascending key order.
func (t Tree[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, t.Len())

	for key, value := range t.All() {
		items = append(items, Item[K, V]{Key: key, Value: value})
	}

	return items
}

// All returns an in-order iterator over the tree's pairs. The iterator
// observes the tree value it was created from; Put and Delete build new
// trees and cannot disturb a running iteration.
func (t Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

// inorder walks left, self, right and reports whether iteration should
// continue.
func inorder[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return inorder(n.left, yield) && yield(n.key, n.value) && inorder(n.right, yield)
}
