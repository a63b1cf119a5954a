package bplus

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkAgainstModel compares the tree with a map holding the same records.
func checkAgainstModel(t *testing.T, tree *BPlusTree[int, int], model map[int]int) {
	t.Helper()
	require.NoError(t, tree.Validate())
	require.Equal(t, len(model), tree.Size())

	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	all := tree.ToArray()
	require.Len(t, all, len(keys))
	for i, e := range all {
		require.Equal(t, keys[i], e.Key)
		require.Equal(t, model[e.Key], e.Value)
	}
	if len(keys) > 0 {
		lo, _ := tree.Min()
		hi, _ := tree.Max()
		require.Equal(t, keys[0], lo)
		require.Equal(t, keys[len(keys)-1], hi)
		require.Equal(t, all, tree.Range(lo, hi))
	} else {
		require.True(t, tree.IsEmpty())
	}
}

func TestRandomInterleavings(t *testing.T) {
	for _, order := range []int{3, 4, 5, 6, 7, 16} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(order), 0x5eed))
			tree, err := New[int, int](order)
			require.NoError(t, err)
			model := make(map[int]int)

			for step := 0; step < 3000; step++ {
				k := rng.IntN(400)
				if rng.IntN(100) < 55 {
					_, existed := model[k]
					require.Equal(t, !existed, tree.Insert(k, step), "insert %d", k)
					model[k] = step
				} else {
					_, existed := model[k]
					require.Equal(t, existed, tree.Delete(k), "delete %d", k)
					delete(model, k)
				}
				require.NoError(t, tree.Validate(), "step %d key %d", step, k)
				require.Equal(t, len(model), tree.Size())
			}
			checkAgainstModel(t, tree, model)

			for k, want := range model {
				got, ok := tree.Search(k)
				require.True(t, ok)
				require.Equal(t, want, got)
			}
			for k := 400; k < 420; k++ {
				_, ok := tree.Search(k)
				require.False(t, ok)
			}
		})
	}
}

func TestRandomFillAndDrain(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree, err := New[int, int](4)
	require.NoError(t, err)
	model := make(map[int]int)

	keys := rng.Perm(1000)
	for _, k := range keys {
		tree.Insert(k, k*10)
		model[k] = k * 10
	}
	checkAgainstModel(t, tree, model)
	grown := tree.Height()

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		require.True(t, tree.Delete(k))
		require.False(t, tree.Delete(k))
		delete(model, k)
		if i%97 == 0 {
			checkAgainstModel(t, tree, model)
		}
	}
	checkAgainstModel(t, tree, model)
	require.Greater(t, grown, tree.Height())
	require.Equal(t, 1, tree.Height())
}
