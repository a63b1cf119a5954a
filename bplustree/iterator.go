package bplus

// Iterator provides a forward-only scan over the leaf chain.
// It must not be used across mutations of the tree.
type Iterator[K any, V any] struct {
	tree  *BPlusTree[K, V]
	leaf  *node[K, V]
	index int
	valid bool
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree[K, V]) SeekGE(target K) *Iterator[K, V] {
	leaf := t.findLeaf(target)
	return t.positionAt(leaf, lowerBound(leaf.key, target, t.cmp))
}

// SeekFirst positions the iterator at the smallest key.
func (t *BPlusTree[K, V]) SeekFirst() *Iterator[K, V] {
	return t.positionAt(t.leftmostLeaf(), 0)
}

func (t *BPlusTree[K, V]) positionAt(leaf *node[K, V], i int) *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t, leaf: leaf, index: i, valid: true}
	it.skipExhausted()
	return it
}

// skipExhausted moves past the end of the current leaf into the next
// non-empty one, invalidating the iterator at the end of the chain.
func (it *Iterator[K, V]) skipExhausted() {
	for it.index >= len(it.leaf.key) {
		next := it.tree.nodes.get(it.leaf.next)
		if next == nil {
			it.valid = false
			it.leaf = nil
			return
		}
		it.leaf = next
		it.index = 0
	}
}

// Valid reports whether the iterator points at an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.valid
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[K, V]) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	it.skipExhausted()
	return it.valid
}

// Key returns the current key.
func (it *Iterator[K, V]) Key() K {
	if !it.valid {
		var zero K
		return zero
	}
	return it.leaf.key[it.index]
}

// Value returns the current value.
func (it *Iterator[K, V]) Value() V {
	if !it.valid {
		var zero V
		return zero
	}
	return it.leaf.vals[it.index]
}
