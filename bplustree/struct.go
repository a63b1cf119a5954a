// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child ids)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + prev/next ids)


- keys: strictly ascending under the tree comparator
- internal nodes: len(children) == len(keys)+1
- leaf nodes: len(vals) == len(keys)
- leaf nodes doubly linked with `prev`/`next` for ordered scans
- all leaf nodes at same depth
- every node lives in the arena; links between nodes are ids, never pointers

*/
package bplus

import (
	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (t NodeType) String() string {
	switch t {
	case NodeInternal:
		return "internal"
	case NodeLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// nodeID addresses a node inside the arena. The zero id means "no node".
type nodeID int64

const nilNode nodeID = 0

// MinOrder is the smallest order a tree accepts.
const MinOrder = 3

type node[K any, V any] struct {
	id       nodeID
	nodeType NodeType
	order    int
	key      []K    // sorted keys (records in a leaf, separators in an internal node)
	parent   nodeID // nilNode for the root

	// leaf only
	vals []V
	prev nodeID
	next nodeID

	// internal only
	children []nodeID
}

// Entry is a single key/value record as stored in a leaf.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

type BPlusTree[K any, V any] struct {
	root  nodeID
	order int
	nodes *arena[K, V]
	cmp   func(a, b K) int // total order over keys
	log   *zap.Logger
}
