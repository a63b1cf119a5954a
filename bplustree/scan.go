package bplus

// Range returns every entry with start <= key <= end in key order.
// An inverted range yields an empty, non-nil slice, as does ToArray on an
// empty tree.
func (t *BPlusTree[K, V]) Range(start, end K) []Entry[K, V] {
	out := []Entry[K, V]{}
	if t.cmp(start, end) > 0 {
		return out
	}
	for it := t.SeekGE(start); it.Valid(); it.Next() {
		if t.cmp(it.Key(), end) > 0 {
			break
		}
		out = append(out, Entry[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return out
}

// Ascend calls fn for every entry in key order until fn returns false.
func (t *BPlusTree[K, V]) Ascend(fn func(key K, value V) bool) {
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.nodes.get(leaf.next) {
		for i := range leaf.key {
			if !fn(leaf.key[i], leaf.vals[i]) {
				return
			}
		}
	}
}

// ToArray returns all entries in key order.
func (t *BPlusTree[K, V]) ToArray() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.Size())
	t.Ascend(func(key K, value V) bool {
		out = append(out, Entry[K, V]{Key: key, Value: value})
		return true
	})
	return out
}

// Min returns the smallest key, or false for an empty tree.
func (t *BPlusTree[K, V]) Min() (K, bool) {
	leaf := t.leftmostLeaf()
	if len(leaf.key) == 0 {
		var zero K
		return zero, false
	}
	return leaf.key[0], true
}

// Max returns the largest key, or false for an empty tree.
func (t *BPlusTree[K, V]) Max() (K, bool) {
	leaf := t.rightmostLeaf()
	if len(leaf.key) == 0 {
		var zero K
		return zero, false
	}
	return leaf.key[len(leaf.key)-1], true
}
