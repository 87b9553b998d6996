package treap

// RandomKey selects a key uniformly at random, spending one draw from the
// generator to pick an order-statistic index. The returned treap carries
// the successor generator state. On an empty treap it reports false and
// returns the receiver unchanged; no randomness is consumed when there is
// nothing to select.
func (t Treap[K, V]) RandomKey() (K, Treap[K, V], bool) {
	n := t.Len()
	if n == 0 {
		var zero K

		return zero, t, false
	}

	draw, gen := t.gen.Next()

	// Modulo bias against a 64-bit draw is negligible for any tree that
	// fits in memory.
	key, _, _ := t.tree.Select(int(draw % uint64(n)))

	return key, Treap[K, V]{gen: gen, tree: t.tree}, true
}
