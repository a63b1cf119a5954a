package bplus

// findLeaf descends from the root to the leaf whose range covers key.
func (t *BPlusTree[K, V]) findLeaf(key K) *node[K, V] {
	n := t.nodes.mustGet(t.root)
	for !n.isLeaf() {
		n = t.nodes.mustGet(n.findChild(key, t.cmp))
	}
	return n
}

// leftmostLeaf follows children[0] down to the first leaf of the chain.
func (t *BPlusTree[K, V]) leftmostLeaf() *node[K, V] {
	n := t.nodes.mustGet(t.root)
	for !n.isLeaf() {
		n = t.nodes.mustGet(n.children[0])
	}
	return n
}

func (t *BPlusTree[K, V]) rightmostLeaf() *node[K, V] {
	n := t.nodes.mustGet(t.root)
	for !n.isLeaf() {
		n = t.nodes.mustGet(n.children[len(n.children)-1])
	}
	return n
}

// Search returns the value stored under key.
func (t *BPlusTree[K, V]) Search(key K) (V, bool) {
	return t.findLeaf(key).searchEntry(key, t.cmp)
}

// Contains reports whether key is present.
func (t *BPlusTree[K, V]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}
