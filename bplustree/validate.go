package bplus

import (
	"fmt"
)

// ValidationError describes the first structural invariant found broken.
type ValidationError struct {
	Invariant string
	Node      int64
	Depth     int
	Detail    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bplus: invariant %q violated at node %d (depth %d): %s",
		e.Invariant, e.Node, e.Depth, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return ErrCorrupt
}

// bound is an optional key limit inherited from ancestor separators.
type bound[K any] struct {
	key K
	set bool
}

type validator[K any, V any] struct {
	t         *BPlusTree[K, V]
	leafDepth int
	leaves    []nodeID // leaves in left-to-right DFS order
}

// Validate checks the whole structure and returns nil or a *ValidationError.
func (t *BPlusTree[K, V]) Validate() error {
	root := t.nodes.get(t.root)
	if root == nil {
		return &ValidationError{Invariant: "root", Node: int64(t.root), Detail: "root is not allocated"}
	}
	if root.parent != nilNode {
		return &ValidationError{Invariant: "parent", Node: int64(root.id),
			Detail: fmt.Sprintf("root has parent %d", root.parent)}
	}

	v := &validator[K, V]{t: t, leafDepth: -1}
	if err := v.checkNode(root, 0, bound[K]{}, bound[K]{}); err != nil {
		return err
	}
	return v.checkLeafChain()
}

// IsValid is Validate reduced to a boolean.
func (t *BPlusTree[K, V]) IsValid() bool {
	return t.Validate() == nil
}

func (v *validator[K, V]) fail(invariant string, n *node[K, V], depth int, format string, args ...any) error {
	return &ValidationError{
		Invariant: invariant,
		Node:      int64(n.id),
		Depth:     depth,
		Detail:    fmt.Sprintf(format, args...),
	}
}

func (v *validator[K, V]) checkNode(n *node[K, V], depth int, lo, hi bound[K]) error {
	t := v.t
	isRoot := n.id == t.root

	if n.order != t.order {
		return v.fail("order", n, depth, "node order %d, tree order %d", n.order, t.order)
	}
	if n.keyCount() > t.order {
		return v.fail("max-keys", n, depth, "%d keys exceed order %d: %v", n.keyCount(), t.order, n.key)
	}
	if !isRoot && !n.halfFull() {
		return v.fail("min-keys", n, depth, "%d keys below minimum %d: %v", n.keyCount(), n.minKeys(), n.key)
	}

	for i := 1; i < len(n.key); i++ {
		if t.cmp(n.key[i-1], n.key[i]) >= 0 {
			return v.fail("sorted", n, depth, "keys %v and %v out of order", n.key[i-1], n.key[i])
		}
	}
	for _, k := range n.key {
		if lo.set && t.cmp(k, lo.key) < 0 {
			return v.fail("separator", n, depth, "key %v below lower bound %v", k, lo.key)
		}
		if hi.set && t.cmp(k, hi.key) >= 0 {
			return v.fail("separator", n, depth, "key %v not below upper bound %v", k, hi.key)
		}
	}

	if n.isLeaf() {
		if len(n.vals) != len(n.key) {
			return v.fail("values", n, depth, "%d keys but %d values", len(n.key), len(n.vals))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return v.fail("leaf-depth", n, depth, "leaf at depth %d, expected %d", depth, v.leafDepth)
		}
		v.leaves = append(v.leaves, n.id)
		return nil
	}

	if isRoot && n.keyCount() == 0 {
		return v.fail("root", n, depth, "internal root without keys")
	}
	if len(n.children) != len(n.key)+1 {
		return v.fail("children", n, depth, "%d children for %d keys", len(n.children), len(n.key))
	}
	for i, cid := range n.children {
		child := t.nodes.get(cid)
		if child == nil {
			return v.fail("children", n, depth, "child %d (id %d) is not allocated", i, cid)
		}
		if child.parent != n.id {
			return v.fail("parent", child, depth+1, "parent is %d, expected %d", child.parent, n.id)
		}

		clo, chi := lo, hi
		if i > 0 {
			clo = bound[K]{key: n.key[i-1], set: true}
		}
		if i < len(n.key) {
			chi = bound[K]{key: n.key[i], set: true}
		}
		if err := v.checkNode(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}

// checkLeafChain walks next links from the leftmost leaf and compares the
// chain with the leaves seen during descent.
func (v *validator[K, V]) checkLeafChain() error {
	t := v.t
	first := t.nodes.get(v.leaves[0])
	if first.prev != nilNode {
		return v.fail("leaf-chain", first, v.leafDepth, "leftmost leaf has prev %d", first.prev)
	}

	var prev *node[K, V]
	i := 0
	for cur := first; cur != nil; cur = t.nodes.get(cur.next) {
		if i >= len(v.leaves) {
			return v.fail("leaf-chain", cur, v.leafDepth, "chain longer than %d leaves (cycle or stray leaf)", len(v.leaves))
		}
		if cur.id != v.leaves[i] {
			return v.fail("leaf-chain", cur, v.leafDepth, "chain position %d is leaf %d, expected %d", i, cur.id, v.leaves[i])
		}
		if prev != nil {
			if cur.prev != prev.id {
				return v.fail("leaf-chain", cur, v.leafDepth, "prev is %d, expected %d", cur.prev, prev.id)
			}
			if len(prev.key) > 0 && len(cur.key) > 0 && t.cmp(prev.key[len(prev.key)-1], cur.key[0]) >= 0 {
				return v.fail("leaf-chain", cur, v.leafDepth, "first key %v not above previous leaf's last key %v",
					cur.key[0], prev.key[len(prev.key)-1])
			}
		}
		if cur.next != nilNode && t.nodes.get(cur.next) == nil {
			return v.fail("leaf-chain", cur, v.leafDepth, "next %d is not allocated", cur.next)
		}
		prev = cur
		i++
	}
	if i != len(v.leaves) {
		return v.fail("leaf-chain", prev, v.leafDepth, "chain has %d leaves, tree has %d", i, len(v.leaves))
	}
	return nil
}
