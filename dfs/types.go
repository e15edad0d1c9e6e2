// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first step generation,
// including cancellation, depth limiting, neighbor filtering and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Algorithm names recorded in Run.Name.
const (
	Name     = "dfs"
	NameTopo = "topological-sort"
)

// Vertex states used by TopologicalSort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = step.Invalid("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = step.Invalid("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = step.Invalid("dfs: invalid option supplied")

	// ErrUndirected is returned by TopologicalSort for an undirected graph.
	ErrUndirected = step.Invalid("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = step.Invalid("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS generation.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, never pushes a vertex deeper than this.
	// 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if it returns false for curr→neighbor, hides that edge.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal, if true, restarts from every unvisited vertex in
	// insertion order once the stack empties, covering every component.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No depth limit
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor returns an Option that hides edges curr→neighbor for
// which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// Snapshot is the renderable DFS state at one instant.
type Snapshot struct {
	// Current is the vertex being expanded, or "".
	Current string `json:"current,omitempty" yaml:"current,omitempty"`

	// Stack is the explicit LIFO stack, bottom first.
	Stack []string `json:"stack" yaml:"stack"`

	// Visited lists visited vertices in visit (pre-)order.
	Visited []string `json:"visited" yaml:"visited"`

	// Completed lists vertices whose neighbours have all been examined,
	// in completion order.
	Completed []string `json:"completed" yaml:"completed"`

	// Depth maps each visited vertex to its depth in its DFS tree.
	Depth map[string]int `json:"depth" yaml:"depth"`

	// Parent maps each visited non-root vertex to the vertex it was
	// reached from.
	Parent map[string]string `json:"parent" yaml:"parent"`
}

// Run is the Run type produced by DFS and TopologicalSort.
type Run = step.Run[Snapshot]

// Order returns the visit order recorded by the terminal step.
func Order(run *Run) []string {
	return step.CloneStrings(run.Last().Snapshot.Visited)
}
