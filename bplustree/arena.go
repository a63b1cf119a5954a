package bplus

// arena owns every node of a tree. Nodes are handed out by id; parent,
// child and sibling links store ids so that the only owner of node memory
// is the arena itself. Released slots are recycled through a free list.
type arena[K any, V any] struct {
	nodes []*node[K, V] // index 0 is reserved for nilNode
	free  []nodeID
	count int
}

func newArena[K any, V any]() *arena[K, V] {
	return &arena[K, V]{
		nodes: make([]*node[K, V], 1, 64),
	}
}

// allocate returns a fresh node of the given type with a stable id.
func (a *arena[K, V]) allocate(nodeType NodeType, order int) *node[K, V] {
	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		id = nodeID(len(a.nodes))
		a.nodes = append(a.nodes, nil)
	}

	nd := newNode[K, V](nodeType, order)
	nd.id = id
	a.nodes[id] = nd
	a.count++
	return nd
}

// get returns the node stored under id, or nil for nilNode and released ids.
func (a *arena[K, V]) get(id nodeID) *node[K, V] {
	if id <= nilNode || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

// mustGet is get for ids that the tree structure guarantees to be live.
func (a *arena[K, V]) mustGet(id nodeID) *node[K, V] {
	nd := a.get(id)
	if nd == nil {
		corruptf("node %d is not allocated", id)
	}
	return nd
}

// release drops the node from the arena and makes its slot reusable.
func (a *arena[K, V]) release(id nodeID) {
	if a.get(id) == nil {
		corruptf("release of unallocated node %d", id)
	}
	a.nodes[id] = nil
	a.free = append(a.free, id)
	a.count--
}

// liveNodes returns the number of allocated nodes.
func (a *arena[K, V]) liveNodes() int {
	return a.count
}

// freeSlots returns the number of recycled slots waiting to be reused.
func (a *arena[K, V]) freeSlots() int {
	return len(a.free)
}
