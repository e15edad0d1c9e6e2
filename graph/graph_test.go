// SPDX-License-Identifier: MIT
// Package graph_test verifies insertion ordering and constraint enforcement
// of the arena graph.

package graph_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

func arcTargets(arcs []graph.Arc) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}
	return out
}

// TestGraph_InsertionOrder checks that Vertices, Edges and Neighbors keep
// insertion order rather than sorting by ID.
func TestGraph_InsertionOrder(t *testing.T) {
	g := graph.NewGraph()

	// Stage 1: declare vertices out of lexical order.
	for _, id := range []string{"Z", "A", "M"} {
		require.NoError(t, g.AddVertex(id))
	}
	// Stage 2: edges auto-create missing endpoints.
	_, err := g.AddEdge("A", "Z")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	idx, err := g.AddEdge("M", "A")
	require.NoError(t, err)

	assert.Equal(t, 2, idx)
	assert.Equal(t, []string{"Z", "A", "M", "B"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	// Stage 3: undirected neighbours list both endpoints in edge order.
	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "B", "M"}, arcTargets(nb))
	assert.Equal(t, step.EdgeRef{Index: 2, From: "A", To: "M"}, nb[2].Ref("A"))
}

func TestGraph_AddVertex(t *testing.T) {
	g := graph.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, graph.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	if g.VertexCount() != 1 {
		t.Errorf("duplicate AddVertex changed count to %d", g.VertexCount())
	}
}

func TestGraph_Directed(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nb)
}

func TestGraph_Constraints(t *testing.T) {
	g := graph.NewGraph()

	_, err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
	assert.ErrorIs(t, err, step.ErrInvalidInput)

	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("", "B")
	assert.ErrorIs(t, err, graph.ErrEmptyVertexID)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestGraph_MultiAndLoops(t *testing.T) {
	g := graph.NewGraph(graph.WithMultiEdges(), graph.WithLoops())
	for _, e := range [][2]string{{"A", "B"}, {"A", "B"}, {"A", "A"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	// Parallel edges repeat; the loop appears once.
	assert.Equal(t, []string{"B", "B", "A"}, arcTargets(nb))
	assert.True(t, g.Multigraph())
	assert.True(t, g.Looped())
}

func TestFromEdgeList(t *testing.T) {
	g, err := graph.FromEdgeList(
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, graph.Edge{Index: 2, From: "B", To: "D"}, g.Edges()[2])

	_, err = graph.FromEdgeList([]string{"A"}, [][2]string{{"A", "X"}})
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	_, err = graph.FromEdgeList([]string{"A", "B"}, [][2]string{{"A", "B"}, {"A", "B"}})
	assert.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)
}

// TestGraph_Concurrent exercises the lock under -race.
func TestGraph_Concurrent(t *testing.T) {
	g := graph.NewGraph(graph.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.AddEdge("hub", "leaf")
				_, _ = g.Neighbors("hub")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, g.EdgeCount())
}
