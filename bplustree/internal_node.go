package bplus

import "slices"

// insertKeyAndChild adds separator key and the child right of it.
func (n *node[K, V]) insertKeyAndChild(key K, right *node[K, V], cmp func(a, b K) int) {
	i, found := binarySearch(n.key, key, cmp)
	if found {
		corruptf("separator %v already present in node %d", key, n.id)
	}
	n.key = slices.Insert(n.key, i, key)
	n.children = slices.Insert(n.children, i+1, right.id)
	right.parent = n.id
}

// findChild returns the child whose subtree may hold key. Equal routes right.
func (n *node[K, V]) findChild(key K, cmp func(a, b K) int) nodeID {
	return n.children[upperBound(n.key, key, cmp)]
}

// findChildIndex returns the position of child in n.children, or -1.
func (n *node[K, V]) findChildIndex(child nodeID) int {
	return slices.Index(n.children, child)
}

// removeKeyAndChild drops key[index] together with the child to its right.
// Merges always fold the right node into the left one, so the stale child is
// always at index+1.
func (n *node[K, V]) removeKeyAndChild(index int) {
	if index < 0 || index >= len(n.key) {
		corruptf("separator index %d out of range in node %d (%d keys)", index, n.id, len(n.key))
	}
	n.key = slices.Delete(n.key, index, index+1)
	n.children = slices.Delete(n.children, index+1, index+2)
}

// borrowFromLeft rotates through the parent: parent.key[sep] comes down as
// n's first key, left's last key goes up, left's last child moves to n.
func (n *node[K, V]) borrowFromLeft(left, parent *node[K, V], sep int, a *arena[K, V]) {
	lastKey := len(left.key) - 1
	lastChild := len(left.children) - 1

	n.key = slices.Insert(n.key, 0, parent.key[sep])
	parent.key[sep] = left.key[lastKey]
	left.key = slices.Delete(left.key, lastKey, lastKey+1)

	moved := left.children[lastChild]
	n.children = slices.Insert(n.children, 0, moved)
	left.children = left.children[:lastChild]
	a.mustGet(moved).parent = n.id
}

// borrowFromRight is the mirror of borrowFromLeft.
func (n *node[K, V]) borrowFromRight(right, parent *node[K, V], sep int, a *arena[K, V]) {
	n.key = append(n.key, parent.key[sep])
	parent.key[sep] = right.key[0]
	right.key = slices.Delete(right.key, 0, 1)

	moved := right.children[0]
	n.children = append(n.children, moved)
	right.children = slices.Delete(right.children, 0, 1)
	a.mustGet(moved).parent = n.id
}

// mergeInternalWithRight pulls parentKey down, appends right's keys and
// children, reparents them and releases right. The caller removes parentKey
// and the pointer to right from the parent.
func (n *node[K, V]) mergeInternalWithRight(right *node[K, V], parentKey K, a *arena[K, V]) {
	if len(right.children) == 0 {
		corruptf("merge of internal node %d with no children", right.id)
	}
	n.key = append(n.key, parentKey)
	n.key = append(n.key, right.key...)
	for _, cid := range right.children {
		a.mustGet(cid).parent = n.id
	}
	n.children = append(n.children, right.children...)
	a.release(right.id)
}
