package bplus

// newNode creates a new node of given type sized for the order.
// Callers go through arena.allocate so the node gets an id.
func newNode[K any, V any](nodeType NodeType, order int) *node[K, V] {
	n := &node[K, V]{
		nodeType: nodeType,
		order:    order,
		key:      make([]K, 0, order+1),
	}
	if nodeType == NodeInternal {
		n.children = make([]nodeID, 0, order+2)
	} else {
		n.vals = make([]V, 0, order+1)
	}
	return n
}
