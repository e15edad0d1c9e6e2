// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func directed(t *testing.T, edges ...[2]string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(graph.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	run, err := dfs.TopologicalSort(nil)
	assert.Nil(t, run)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_UndirectedGraph ensures TopologicalSort rejects undirected graphs.
func TestTopo_UndirectedGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(graph.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
	assert.ErrorIs(t, err, step.ErrInvalidInput)
}

// TestTopo_EmptyGraph covers a directed graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	run, err := dfs.TopologicalSort(graph.NewGraph(graph.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, dfs.TopoOrder(run))
	assert.Equal(t, []step.Kind{step.KindInit, step.KindDone}, run.Kinds())
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	run, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.NoError(t, run.Validate())
	assert.Equal(t, []string{"A", "B", "C"}, dfs.TopoOrder(run))
	assert.Equal(t, 3, run.Count(step.KindVisit))
	assert.Equal(t, 3, run.Count(step.KindNodeComplete))
}

// TestTopo_BranchingDAG checks A→B and A→C: A must come first.
func TestTopo_BranchingDAG(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"A", "C"})

	run, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	order := dfs.TopoOrder(run)
	assert.Equal(t, "A", order[0])
	assert.ElementsMatch(t, []string{"B", "C"}, order[1:])
}

// TestTopo_PathOnStack checks that Snapshot.Stack holds the Gray path.
func TestTopo_PathOnStack(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	run, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	for _, s := range run.Filter(step.KindVisit) {
		if s.Subject.Node == "C" {
			assert.Equal(t, []string{"A", "B", "C"}, s.Snapshot.Stack)
		}
	}
	assert.Empty(t, run.Last().Snapshot.Stack)
}

// TestTopo_Cycle ensures that a cycle detection returns ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	run, err := dfs.TopologicalSort(g)
	assert.Nil(t, run)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "C → A")
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	vs := []string{"V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10"}
	for _, v := range vs {
		_ = g.AddVertex(v)
	}
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	run, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	order := dfs.TopoOrder(run)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Less(t,
			position(order, e[0]), position(order, e[1]),
			"edge %s→%s should be respected", e[0], e[1],
		)
	}
}
