package treap

import (
	"cmp"
	"iter"
)

// Treap pairs a Tree with the Generator that supplies its priorities.
// Every Put draws one priority from the generator and the returned treap
// carries the successor state, so the generator is threaded through the
// sequence of operations instead of living in a global. Discarding a
// returned treap and reusing the receiver replays the same draw.
//
// Like Tree, the zero Treap has no comparison function; construct treaps
// with New, NewFunc, or one of the WithGenerator variants.
type Treap[K, V any] struct {
	gen  Generator
	tree Tree[K, V]
}

// New returns an empty treap over the key type's natural order, seeded with
// DefaultSeed.
func New[K cmp.Ordered, V any]() Treap[K, V] {
	return NewWithGenerator[K, V](NewGenerator(DefaultSeed))
}

// NewWithGenerator returns an empty treap over the key type's natural
// order, drawing priorities from the given generator state.
func NewWithGenerator[K cmp.Ordered, V any](g Generator) Treap[K, V] {
	return Treap[K, V]{gen: g, tree: NewTree[K, V]()}
}

// NewFunc returns an empty treap ordered by the given comparison function,
// seeded with DefaultSeed. The function must define a total order over K.
func NewFunc[K, V any](compare func(K, K) int) Treap[K, V] {
	return NewFuncWithGenerator[K, V](compare, NewGenerator(DefaultSeed))
}

// NewFuncWithGenerator returns an empty treap with both the comparison
// function and the generator state supplied by the caller.
func NewFuncWithGenerator[K, V any](compare func(K, K) int, g Generator) Treap[K, V] {
	return Treap[K, V]{gen: g, tree: NewTreeFunc[K, V](compare)}
}

// Singleton returns a treap holding exactly one pair, seeded with
// DefaultSeed. One priority is drawn for the pair's node.
func Singleton[K cmp.Ordered, V any](key K, value V) Treap[K, V] {
	return SingletonWithGenerator(NewGenerator(DefaultSeed), key, value)
}

// SingletonWithGenerator returns a treap holding exactly one pair whose
// priority is drawn from the given generator state.
func SingletonWithGenerator[K cmp.Ordered, V any](g Generator, key K, value V) Treap[K, V] {
	return NewWithGenerator[K, V](g).Put(key, value)
}

// FromItems builds a treap by inserting the items left to right starting
// from New. A later item with a duplicate key overrides the earlier one.
func FromItems[K cmp.Ordered, V any](items []Item[K, V]) Treap[K, V] {
	t := New[K, V]()
	for _, item := range items {
		t = t.Put(item.Key, item.Value)
	}

	return t
}

// Put draws one priority from the generator and inserts the pair. The
// returned treap carries both the new tree and the successor generator
// state. Updating an existing key also uses the freshly drawn priority.
func (t Treap[K, V]) Put(key K, value V) Treap[K, V] {
	priority, gen := t.gen.Next()

	return Treap[K, V]{gen: gen, tree: t.tree.Put(key, priority, value)}
}

// Delete removes key if present. Deletion consumes no randomness: the
// generator state passes through to the result unchanged.
func (t Treap[K, V]) Delete(key K) Treap[K, V] {
	return Treap[K, V]{gen: t.gen, tree: t.tree.Delete(key)}
}

// Get returns the value stored under key and whether the key is present.
// Lookups never touch the generator.
func (t Treap[K, V]) Get(key K) (V, bool) {
	return t.tree.Get(key)
}

// Has reports whether key is present.
func (t Treap[K, V]) Has(key K) bool {
	return t.tree.Has(key)
}

// Len returns the number of keys stored.
func (t Treap[K, V]) Len() int {
	return t.tree.Len()
}

// Items returns the treap's pairs in ascending key order, discarding
// priorities.
func (t Treap[K, V]) Items() []Item[K, V] {
	return t.tree.Items()
}

// All returns an in-order iterator over the treap's pairs.
func (t Treap[K, V]) All() iter.Seq2[K, V] {
	return t.tree.All()
}

// Rank returns the number of keys strictly less than key.
func (t Treap[K, V]) Rank(key K) int {
	return t.tree.Rank(key)
}

// Select returns the i-th pair (0-based) in ascending key order, reporting
// false for out-of-range indices.
func (t Treap[K, V]) Select(i int) (K, V, bool) {
	return t.tree.Select(i)
}

// Generator returns the treap's current generator state.
func (t Treap[K, V]) Generator() Generator {
	return t.gen
}

// Tree returns the underlying priority-ordered search tree.
func (t Treap[K, V]) Tree() Tree[K, V] {
	return t.tree
}
