// Package treap implements a randomized treap: a binary search tree ordered
// by key whose shape is additionally constrained by a max-heap order over
// per-node random priorities, giving expected O(log n) lookup, insertion, and
// deletion without explicit rebalancing.
//
// High-level behavior:
//   - Tree is the priority-ordered search tree itself. Callers supply the
//     priority on every insert, which makes tree shapes fully deterministic
//     and testable.
//   - Treap pairs a Tree with a Generator that manufactures priorities. Each
//     insert draws one value from the generator and carries the successor
//     state in the returned treap, so a fixed seed reproduces identical
//     shapes across runs. There is no global generator.
//   - Both types have value semantics: operations return a new value instead
//     of mutating the receiver. Nodes are never modified after construction;
//     unchanged subtrees are shared between versions, so any earlier value
//     remains a valid immutable snapshot and is safe to read concurrently.
//
// Mutating a single logical treap from multiple goroutines requires the
// caller to serialize the writers; readers can keep using whatever snapshot
// value they already hold.
package treap
