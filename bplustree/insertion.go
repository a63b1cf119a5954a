package bplus

import "go.uber.org/zap"

// Insert stores value under key. It returns true when the key is new and
// false when an existing value was replaced.
func (t *BPlusTree[K, V]) Insert(key K, value V) bool {
	leaf := t.findLeaf(key)
	if !leaf.insertEntry(key, value, t.cmp) {
		return false
	}

	if leaf.overflowing() {
		sep, right := leaf.splitLeaf(t.nodes)
		t.log.Debug("leaf split",
			zap.Int64("leaf", int64(leaf.id)),
			zap.Int64("right", int64(right.id)),
			zap.Any("separator", sep))
		t.insertIntoParent(leaf, sep, right)
	}
	return true
}
