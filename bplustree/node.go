package bplus

import "slices"

// Capabilities shared by leaf and internal nodes. Every borrow/merge
// decision is made from halfFull and canLend.

func (n *node[K, V]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

func (n *node[K, V]) keyCount() int {
	return len(n.key)
}

// keys returns a copy of the node's ordered keys.
func (n *node[K, V]) keys() []K {
	return slices.Clone(n.key)
}

func (n *node[K, V]) parentID() nodeID {
	return n.parent
}

func (n *node[K, V]) setParent(id nodeID) {
	n.parent = id
}

// minKeys is the fill floor for every non-root node.
func (n *node[K, V]) minKeys() int {
	return n.order / 2
}

func (n *node[K, V]) halfFull() bool {
	return n.keyCount() >= n.minKeys()
}

// canLend reports whether the node stays half full after giving up one entry.
func (n *node[K, V]) canLend() bool {
	return n.keyCount()-1 >= n.minKeys()
}

func (n *node[K, V]) overflowing() bool {
	return n.keyCount() > n.order
}
