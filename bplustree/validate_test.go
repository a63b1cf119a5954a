package bplus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// grownTree returns an order-4 tree of height 3 over keys 1..25.
func grownTree(t *testing.T) *BPlusTree[int, string] {
	t.Helper()
	tree := newIntTree(t, 4)
	for k := 1; k <= 25; k++ {
		tree.Insert(k, word(k))
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, 3, tree.Height())
	return tree
}

func requireViolation(t *testing.T, tree *BPlusTree[int, string], invariant string) {
	t.Helper()
	err := tree.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCorrupt)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, invariant, verr.Invariant, verr.Error())
	require.False(t, tree.IsValid())
}

func TestValidateDetectsUnsortedKeys(t *testing.T) {
	tree := grownTree(t)
	leaf := tree.leftmostLeaf()
	leaf.key[0], leaf.key[1] = leaf.key[1], leaf.key[0]
	requireViolation(t, tree, "sorted")
}

func TestValidateDetectsSeparatorViolation(t *testing.T) {
	tree := grownTree(t)
	// rightmost leaf holds 22..25 under separator 22; 20 keeps it sorted
	leaf := tree.rightmostLeaf()
	leaf.key[0] = 20
	requireViolation(t, tree, "separator")
}

func TestValidateDetectsUnderfullNode(t *testing.T) {
	tree := grownTree(t)
	leaf := tree.leftmostLeaf()
	leaf.key = leaf.key[:1]
	leaf.vals = leaf.vals[:1]
	requireViolation(t, tree, "min-keys")
}

func TestValidateDetectsChildCountMismatch(t *testing.T) {
	tree := grownTree(t)
	root := tree.nodes.mustGet(tree.root)
	root.children = root.children[:len(root.children)-1]
	requireViolation(t, tree, "children")
}

func TestValidateDetectsBadParent(t *testing.T) {
	tree := grownTree(t)
	leaf := tree.leftmostLeaf()
	leaf.parent = tree.root
	requireViolation(t, tree, "parent")
}

func TestValidateDetectsValueMismatch(t *testing.T) {
	tree := grownTree(t)
	leaf := tree.leftmostLeaf()
	leaf.vals = leaf.vals[:len(leaf.vals)-1]
	requireViolation(t, tree, "values")
}

func TestValidateDetectsBrokenChain(t *testing.T) {
	t.Run("cycle", func(t *testing.T) {
		tree := grownTree(t)
		last := tree.rightmostLeaf()
		last.next = tree.leftmostLeaf().id
		requireViolation(t, tree, "leaf-chain")
	})
	t.Run("prev", func(t *testing.T) {
		tree := grownTree(t)
		second := tree.nodes.mustGet(tree.leftmostLeaf().next)
		second.prev = nilNode
		requireViolation(t, tree, "leaf-chain")
	})
	t.Run("skip", func(t *testing.T) {
		tree := grownTree(t)
		first := tree.leftmostLeaf()
		second := tree.nodes.mustGet(first.next)
		first.next = second.next
		requireViolation(t, tree, "leaf-chain")
	})
}

func TestValidateDetectsUnevenDepth(t *testing.T) {
	tree := grownTree(t)
	// hang a leaf directly under the root
	root := tree.nodes.mustGet(tree.root)
	stray := tree.nodes.allocate(NodeLeaf, 4)
	stray.parent = root.id
	stray.key = append(stray.key, 100, 101)
	stray.vals = append(stray.vals, "a", "b")
	root.key = append(root.key, 99)
	root.children = append(root.children, stray.id)
	requireViolation(t, tree, "leaf-depth")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Invariant: "sorted", Node: 3, Depth: 2, Detail: "keys 5 and 4 out of order"}
	require.EqualError(t, err,
		`bplus: invariant "sorted" violated at node 3 (depth 2): keys 5 and 4 out of order`)
}
