// SPDX-License-Identifier: MIT

package graph

import (
	"sync"

	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = step.Invalid("graph: vertex ID is empty")
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = step.Invalid("graph: vertex not found")
	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = step.Invalid("graph: self-loop not allowed")
	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = step.Invalid("graph: multi-edges not allowed")
)

// Edge is one connection between two vertices.
type Edge struct {
	// Index is the insertion ordinal of the edge, starting at 0.
	Index int `json:"index" yaml:"index"`
	// From is the source vertex ID.
	From string `json:"from" yaml:"from"`
	// To is the destination vertex ID.
	To string `json:"to" yaml:"to"`
}

// Arc is an edge seen from one of its endpoints.
type Arc struct {
	// Edge is the underlying edge record.
	Edge Edge
	// To is the endpoint opposite to the vertex the arc was listed for.
	To string
}

// Ref converts the arc into a step.EdgeRef oriented along the traversal.
func (a Arc) Ref(from string) step.EdgeRef {
	return step.EdgeRef{Index: a.Edge.Index, From: from, To: a.To}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of every edge
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an insertion-ordered arena of vertices and edges.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	order    []string       // vertex IDs in insertion order
	position map[string]int // vertex ID → index in order
	edges    []Edge         // edge index → Edge
	incident map[string][]int
}

// NewGraph creates an empty Graph. By default it is undirected, with no
// loops and no multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		position: make(map[string]int),
		incident: make(map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
