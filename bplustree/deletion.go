package bplus

import "go.uber.org/zap"

// Delete removes key. It returns false, leaving the tree untouched, when the
// key is absent.
func (t *BPlusTree[K, V]) Delete(key K) bool {
	leaf := t.findLeaf(key)
	if !leaf.deleteEntry(key, t.cmp) {
		return false
	}
	t.rebalance(leaf)
	return true
}

// rebalance walks up from n while the current node is below half full:
// borrow from the left sibling, else borrow from the right sibling, else
// merge with a sibling and continue with the parent, which just lost a key.
func (t *BPlusTree[K, V]) rebalance(n *node[K, V]) {
	for n.id != t.root && !n.halfFull() {
		parent := t.nodes.get(n.parentID())
		if parent == nil {
			corruptf("underflowing node %d has no parent", n.id)
		}
		idx := parent.findChildIndex(n.id)
		if idx < 0 {
			corruptf("node %d not found among children of %d", n.id, parent.id)
		}

		var left, right *node[K, V]
		if idx > 0 {
			left = t.nodes.mustGet(parent.children[idx-1])
		}
		if idx < len(parent.children)-1 {
			right = t.nodes.mustGet(parent.children[idx+1])
		}
		if left == nil && right == nil {
			corruptf("node %d has no siblings under %d", n.id, parent.id)
		}

		if n.isLeaf() {
			if sep, ok := n.tryBorrowFromLeft(left); ok {
				parent.key[idx-1] = sep
				t.logBorrow("left", n, left)
				return
			}
			if sep, ok := n.tryBorrowFromRight(right); ok {
				parent.key[idx] = sep
				t.logBorrow("right", n, right)
				return
			}
			if left != nil {
				t.logMerge(left, n)
				left.mergeLeafWithRight(n, t.nodes)
				parent.removeKeyAndChild(idx - 1)
			} else {
				t.logMerge(n, right)
				n.mergeLeafWithRight(right, t.nodes)
				parent.removeKeyAndChild(idx)
			}
		} else {
			if left != nil && left.canLend() {
				n.borrowFromLeft(left, parent, idx-1, t.nodes)
				t.logBorrow("left", n, left)
				return
			}
			if right != nil && right.canLend() {
				n.borrowFromRight(right, parent, idx, t.nodes)
				t.logBorrow("right", n, right)
				return
			}
			if left != nil {
				t.logMerge(left, n)
				left.mergeInternalWithRight(n, parent.key[idx-1], t.nodes)
				parent.removeKeyAndChild(idx - 1)
			} else {
				t.logMerge(n, right)
				n.mergeInternalWithRight(right, parent.key[idx], t.nodes)
				parent.removeKeyAndChild(idx)
			}
		}
		n = parent
	}
	t.collapseRoot()
}

// collapseRoot replaces an internal root left with no keys by its only child.
func (t *BPlusTree[K, V]) collapseRoot() {
	root := t.nodes.mustGet(t.root)
	if root.isLeaf() || root.keyCount() > 0 {
		return
	}
	if len(root.children) != 1 {
		corruptf("empty root %d has %d children", root.id, len(root.children))
	}
	child := t.nodes.mustGet(root.children[0])
	child.setParent(nilNode)
	t.root = child.id
	t.nodes.release(root.id)
	t.log.Debug("root collapse",
		zap.Int64("old_root", int64(root.id)),
		zap.Int64("root", int64(child.id)))
}

func (t *BPlusTree[K, V]) logBorrow(side string, n, sibling *node[K, V]) {
	t.log.Debug("borrow",
		zap.String("side", side),
		zap.Stringer("type", n.nodeType),
		zap.Int64("node", int64(n.id)),
		zap.Int64("sibling", int64(sibling.id)))
}

func (t *BPlusTree[K, V]) logMerge(into, from *node[K, V]) {
	t.log.Debug("merge",
		zap.Stringer("type", into.nodeType),
		zap.Int64("into", int64(into.id)),
		zap.Int64("from", int64(from.id)))
}
