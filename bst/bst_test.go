// SPDX-License-Identifier: MIT

package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/bst"
	"github.com/katalvlaran/stepviz/step"
)

func sample() *bst.Tree {
	return bst.NewTree(50, 30, 70, 20, 40, 60, 80)
}

func TestNewTree(t *testing.T) {
	tree := bst.NewTree(5, 3, 5, 8)
	assert.Equal(t, []int{3, 5, 8}, tree.Values())
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 2, tree.Height())

	empty := bst.NewTree()
	assert.Equal(t, bst.Nil, empty.Root())
	assert.Empty(t, empty.Values())
}

func TestTree_ZeroValue(t *testing.T) {
	var tree bst.Tree
	assert.Equal(t, bst.Nil, tree.Root())
	assert.Zero(t, tree.Height())

	run, err := tree.Search(4)
	require.NoError(t, err)
	assert.Equal(t, step.KindNotFound, run.Steps()[0].Kind)

	var fresh bst.Tree
	run, err = fresh.Insert(1)
	require.NoError(t, err)
	require.NoError(t, run.Validate())
	assert.Equal(t, []step.Kind{step.KindInsert, step.KindDone}, run.Kinds())
	_, err = fresh.Insert(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, fresh.Values())

	var traversed bst.Tree
	run, err = traversed.InOrder()
	require.NoError(t, err)
	assert.Equal(t, 1, run.Len())
	_, err = traversed.Delete(3)
	require.NoError(t, err)
}

func TestInsert(t *testing.T) {
	tree := sample()
	run, err := tree.Insert(65)
	require.NoError(t, err)
	require.NoError(t, run.Validate())

	assert.Equal(t, []step.Kind{
		step.KindDescend, step.KindDescend, step.KindDescend, step.KindInsert, step.KindDone,
	}, run.Kinds())
	assert.Equal(t, []int{20, 30, 40, 50, 60, 65, 70, 80}, tree.Values())

	ins := run.Filter(step.KindInsert)[0]
	require.NotNil(t, ins.Subject.Value)
	assert.Equal(t, 65, *ins.Subject.Value)
	// the path runs root → 70 → 60 → new node
	assert.Len(t, ins.Snapshot.Path, 4)
	assert.Equal(t, tree.Values(), run.Last().Snapshot.InOrderKeys())
}

func TestInsert_EmptyAndDuplicate(t *testing.T) {
	tree := bst.NewTree()
	run, err := tree.Insert(7)
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{step.KindInsert, step.KindDone}, run.Kinds())
	assert.Equal(t, bst.NodeID(0), tree.Root())

	run, err = tree.Insert(7)
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{step.KindDuplicate, step.KindDone}, run.Kinds())
	assert.Equal(t, 1, tree.Len())
}

func TestSearch(t *testing.T) {
	tree := sample()

	run, err := tree.Search(60)
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{step.KindDescend, step.KindDescend, step.KindFound, step.KindDone}, run.Kinds())

	run, err = tree.Search(55)
	require.NoError(t, err)
	assert.Equal(t, step.KindNotFound, run.Kinds()[run.Len()-2])
	assert.Equal(t, 3, run.Count(step.KindDescend))
}

func TestDelete_Leaf(t *testing.T) {
	tree := sample()
	run, err := tree.Delete(20)
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{
		step.KindDescend, step.KindDescend, step.KindFound, step.KindDelete, step.KindDone,
	}, run.Kinds())
	assert.Equal(t, []int{30, 40, 50, 60, 70, 80}, tree.Values())
}

func TestDelete_OneChild(t *testing.T) {
	tree := bst.NewTree(50, 30, 20)
	run, err := tree.Delete(30)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 50}, tree.Values())
	del := run.Filter(step.KindDelete)[0]
	assert.Contains(t, del.Note, "child 20")
}

// TestDelete_TwoChildren promotes the in-order successor into the root and
// keeps the root's NodeID.
func TestDelete_TwoChildren(t *testing.T) {
	tree := sample()
	_, err := tree.Insert(65)
	require.NoError(t, err)
	root := tree.Root()

	run, err := tree.Delete(50)
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{
		step.KindFound, step.KindDescend, step.KindDescend, step.KindReplace, step.KindDelete, step.KindDone,
	}, run.Kinds())
	assert.Equal(t, []int{20, 30, 40, 60, 65, 70, 80}, tree.Values())
	assert.Equal(t, root, tree.Root())

	final := run.Last().Snapshot
	for _, n := range final.Nodes {
		if n.ID == root {
			assert.Equal(t, 60, n.Key)
		}
	}
}

func TestDelete_Missing(t *testing.T) {
	tree := sample()
	run, err := tree.Delete(99)
	require.NoError(t, err)
	assert.Equal(t, step.KindNotFound, run.Filter(step.KindNotFound)[0].Kind)
	assert.Equal(t, 7, tree.Len())
}

// TestIDsNeverReused checks that a fresh insert after a delete gets a new ID.
func TestIDsNeverReused(t *testing.T) {
	tree := bst.NewTree(1, 2)
	_, err := tree.Delete(2)
	require.NoError(t, err)
	run, err := tree.Insert(3)
	require.NoError(t, err)
	ins := run.Filter(step.KindInsert)[0]
	assert.Equal(t, "2", ins.Subject.Node)
}

func TestTraversals(t *testing.T) {
	tree := bst.NewTree(50, 30, 70)
	cases := []struct {
		name string
		gen  func() (*bst.Run, error)
		want []int
	}{
		{"in", tree.InOrder, []int{30, 50, 70}},
		{"pre", tree.PreOrder, []int{50, 30, 70}},
		{"post", tree.PostOrder, []int{30, 70, 50}},
	}
	for _, tc := range cases {
		run, err := tc.gen()
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, run.Last().Snapshot.Output, tc.name)
		assert.Equal(t, 3, run.Count(step.KindVisit), tc.name)
	}

	run, err := bst.NewTree().InOrder()
	require.NoError(t, err)
	assert.Equal(t, []step.Kind{step.KindDone}, run.Kinds())
}

// TestRandomOperations keeps a sorted model alongside the tree and checks the
// in-order invariant after every operation.
func TestRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	tree := bst.NewTree()
	model := map[int]bool{}

	for i := 0; i < 400; i++ {
		v := rnd.Intn(40)
		var (
			run *bst.Run
			err error
		)
		if rnd.Intn(3) == 0 {
			run, err = tree.Delete(v)
			delete(model, v)
		} else {
			run, err = tree.Insert(v)
			model[v] = true
		}
		require.NoError(t, err)

		want := make([]int, 0, len(model))
		for k := range model {
			want = append(want, k)
		}
		sort.Ints(want)

		got := tree.Values()
		require.Equal(t, want, got, "after op %d on %d", i, v)
		require.Equal(t, got, run.Last().Snapshot.InOrderKeys())
		require.True(t, sort.IntsAreSorted(got))
	}
}
