// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *graph.Graph {
	g := graph.NewGraph(graph.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1).
// IDs: "T-1","T-2",…,"T-N".
func buildBinaryTree(depth int) *graph.Graph {
	g := graph.NewGraph(graph.WithDirected(true))
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		id := fmt.Sprintf("T-%d", i)
		_ = g.AddVertex(id)
		if i > 1 {
			_, _ = g.AddEdge(fmt.Sprintf("T-%d", i/2), id)
		}
	}

	return g
}

func undirected(t *testing.T, edges ...[2]string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func TestDFS_NilGraph(t *testing.T) {
	run, err := dfs.DFS(nil, "A")
	assert.Nil(t, run)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	run, err := dfs.DFS(g, "X")
	assert.Nil(t, run)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	// "" is only accepted together with WithFullTraversal
	_, err = dfs.DFS(g, "")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_NegativeDepth(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"})
	_, err := dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
	assert.ErrorIs(t, err, step.ErrInvalidInput)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddVertex("X"))

	run, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, dfs.Order(run))
	assert.Equal(t, []step.Kind{
		step.KindInit, step.KindPop, step.KindVisit, step.KindNodeComplete, step.KindDone,
	}, run.Kinds())
	final := run.Last().Snapshot
	assert.Equal(t, 0, final.Depth["X"])
	_, hasParent := final.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

// TestDFS_StepSequence pins the steps for A–B, A–C, B–D from A.
func TestDFS_StepSequence(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	run, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	require.NoError(t, run.Validate())

	assert.Equal(t, []string{"A", "B", "D", "C"}, dfs.Order(run))
	assert.Equal(t, []step.Kind{
		step.KindInit,
		step.KindPop, step.KindVisit,
		step.KindExploreEdge, step.KindPush, step.KindExploreEdge, step.KindPush,
		step.KindNodeComplete,
		step.KindPop, step.KindVisit,
		step.KindExploreEdge, step.KindPush, step.KindExploreEdge,
		step.KindNodeComplete,
		step.KindPop, step.KindVisit, step.KindExploreEdge, step.KindNodeComplete,
		step.KindPop, step.KindVisit, step.KindExploreEdge, step.KindNodeComplete,
		step.KindDone,
	}, run.Kinds())

	// After expanding A the first neighbour B sits on top of C.
	s7, err := run.At(7)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, s7.Snapshot.Stack)

	final := run.Last().Snapshot
	assert.Empty(t, final.Stack)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, final.Parent)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1}, final.Depth)
}

// TestDFS_SkipOnRepeatedPop covers a vertex pushed twice before it is visited.
func TestDFS_SkipOnRepeatedPop(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"})

	run, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, dfs.Order(run))
	skips := run.Filter(step.KindSkip)
	require.Len(t, skips, 1)
	assert.Equal(t, "C", skips[0].Subject.Node)
	// every vertex is visited exactly once
	assert.Equal(t, 3, run.Count(step.KindVisit))
}

func TestDFS_SelfLoop(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithLoops())
	_, err := g.AddEdge("A", "A")
	require.NoError(t, err)

	run, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, dfs.Order(run))
	assert.Equal(t, 0, run.Count(step.KindPush))
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := buildChain(5)
	run, err := dfs.DFS(g, "N0")
	require.NoError(t, err)

	final := run.Last().Snapshot
	for i := 0; i < 5; i++ {
		id := "N" + strconv.Itoa(i)
		assert.Equal(t, i, final.Depth[id])
		if i > 0 {
			assert.Equal(t, "N"+strconv.Itoa(i-1), final.Parent[id])
		}
	}
}

func TestDFS_BinaryTree_PreOrder(t *testing.T) {
	g := buildBinaryTree(3)
	run, err := dfs.DFS(g, "T-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-4", "T-5", "T-3", "T-6", "T-7"}, dfs.Order(run))
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(4)
	run, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1"}, dfs.Order(run))
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"A", "C"})
	run, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, dfs.Order(run))
}

func TestDFS_Disconnected(t *testing.T) {
	g := undirected(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	run, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, dfs.Order(run))

	run, err = dfs.DFS(g, "P", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q", "X", "Y"}, dfs.Order(run))

	run, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "P", "Q"}, dfs.Order(run))
	require.NoError(t, run.Validate())
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
