package bplus

import "go.uber.org/zap"

// insertIntoParent hands sepKey and right to the parent of left. If the
// parent overflows it splits and the promoted key walks one level up; when
// the walk runs past the root a new root is created and the tree grows.
func (t *BPlusTree[K, V]) insertIntoParent(left *node[K, V], sepKey K, right *node[K, V]) {
	for {
		if left.parentID() == nilNode {
			root := t.nodes.allocate(NodeInternal, t.order)
			root.children = append(root.children, left.id)
			left.setParent(root.id)
			t.root = root.id
			t.log.Debug("root grow", zap.Int64("root", int64(root.id)))
		}

		parent := t.nodes.mustGet(left.parentID())
		parent.insertKeyAndChild(sepKey, right, t.cmp)
		if !parent.overflowing() {
			return
		}

		sepKey, right = parent.splitInternal(t.nodes)
		t.log.Debug("internal split",
			zap.Int64("node", int64(parent.id)),
			zap.Int64("right", int64(right.id)),
			zap.Any("promoted", sepKey))
		left = parent
	}
}
