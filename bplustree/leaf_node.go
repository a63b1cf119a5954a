package bplus

import "slices"

// insertEntry puts key/value at its sorted position. An existing key has its
// value replaced and false is returned. Overflow is left to the caller.
func (n *node[K, V]) insertEntry(key K, value V, cmp func(a, b K) int) bool {
	i, found := binarySearch(n.key, key, cmp)
	if found {
		n.vals[i] = value
		return false
	}
	n.key = slices.Insert(n.key, i, key)
	n.vals = slices.Insert(n.vals, i, value)
	return true
}

func (n *node[K, V]) searchEntry(key K, cmp func(a, b K) int) (V, bool) {
	i, found := binarySearch(n.key, key, cmp)
	if !found {
		var zero V
		return zero, false
	}
	return n.vals[i], true
}

func (n *node[K, V]) deleteEntry(key K, cmp func(a, b K) int) bool {
	i, found := binarySearch(n.key, key, cmp)
	if !found {
		return false
	}
	n.key = slices.Delete(n.key, i, i+1)
	n.vals = slices.Delete(n.vals, i, i+1)
	return true
}

// splitLeaf keeps ceil(n/2) entries here and moves the rest to a new right
// leaf linked in after this one. The returned separator is the right leaf's
// first key, which stays in the right leaf.
func (n *node[K, V]) splitLeaf(a *arena[K, V]) (K, *node[K, V]) {
	keep := (len(n.key) + 1) / 2

	right := a.allocate(NodeLeaf, n.order)
	right.key = append(right.key, n.key[keep:]...)
	right.vals = append(right.vals, n.vals[keep:]...)
	right.parent = n.parent

	clear(n.key[keep:])
	clear(n.vals[keep:])
	n.key = n.key[:keep]
	n.vals = n.vals[:keep]

	// link: n <-> right <-> old next
	right.next = n.next
	if next := a.get(n.next); next != nil {
		next.prev = right.id
	}
	right.prev = n.id
	n.next = right.id

	return right.key[0], right
}

// tryBorrowFromLeft moves the left sibling's last entry to the front of n.
// It returns the new parent separator, which is the borrowed key.
func (n *node[K, V]) tryBorrowFromLeft(left *node[K, V]) (K, bool) {
	var zero K
	if left == nil || !left.canLend() {
		return zero, false
	}
	last := len(left.key) - 1
	n.key = slices.Insert(n.key, 0, left.key[last])
	n.vals = slices.Insert(n.vals, 0, left.vals[last])
	left.key = slices.Delete(left.key, last, last+1)
	left.vals = slices.Delete(left.vals, last, last+1)
	return n.key[0], true
}

// tryBorrowFromRight moves the right sibling's first entry to the end of n.
// It returns the new parent separator, the sibling's new first key.
func (n *node[K, V]) tryBorrowFromRight(right *node[K, V]) (K, bool) {
	var zero K
	if right == nil || !right.canLend() {
		return zero, false
	}
	n.key = append(n.key, right.key[0])
	n.vals = append(n.vals, right.vals[0])
	right.key = slices.Delete(right.key, 0, 1)
	right.vals = slices.Delete(right.vals, 0, 1)
	return right.key[0], true
}

// mergeLeafWithRight absorbs right into n, unlinks right from the chain and
// releases it. The caller removes right's separator from the parent.
func (n *node[K, V]) mergeLeafWithRight(right *node[K, V], a *arena[K, V]) {
	n.key = append(n.key, right.key...)
	n.vals = append(n.vals, right.vals...)

	n.next = right.next
	if next := a.get(right.next); next != nil {
		next.prev = n.id
	}
	a.release(right.id)
}
