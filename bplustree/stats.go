package bplus

// Height is the number of levels from the root to the leaves, inclusive.
// An empty tree has height 1.
func (t *BPlusTree[K, V]) Height() int {
	h := 1
	n := t.nodes.mustGet(t.root)
	for !n.isLeaf() {
		n = t.nodes.mustGet(n.children[0])
		h++
	}
	return h
}

// Size counts the records by walking the leaf chain.
func (t *BPlusTree[K, V]) Size() int {
	size := 0
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.nodes.get(leaf.next) {
		size += leaf.keyCount()
	}
	return size
}

// Len is Size.
func (t *BPlusTree[K, V]) Len() int {
	return t.Size()
}

// IsEmpty reports whether the root is a leaf without records.
func (t *BPlusTree[K, V]) IsEmpty() bool {
	root := t.nodes.mustGet(t.root)
	return root.isLeaf() && root.keyCount() == 0
}

// Stats is a snapshot of the tree shape.
type Stats struct {
	Order         int
	Height        int
	Size          int
	LeafNodes     int
	InternalNodes int
	LiveNodes     int // allocated arena slots
	FreeSlots     int // released arena slots awaiting reuse
}

func (t *BPlusTree[K, V]) Stats() Stats {
	s := Stats{
		Order:     t.order,
		Height:    t.Height(),
		LiveNodes: t.nodes.liveNodes(),
		FreeSlots: t.nodes.freeSlots(),
	}
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.nodes.get(leaf.next) {
		s.LeafNodes++
		s.Size += leaf.keyCount()
	}
	s.InternalNodes = s.LiveNodes - s.LeafNodes
	return s
}
