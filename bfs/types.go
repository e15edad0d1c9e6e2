// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first step generation over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Name is the algorithm name recorded in Run.Name.
const Name = "bfs"

// Sentinel errors for BFS generation.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = step.Invalid("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = step.Invalid("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = step.Invalid("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when dest was never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS generation.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops enqueueing beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can hide edges by returning false.
	// Called for each edge curr→neighbor; hidden edges record no step.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor hides neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Snapshot is the renderable BFS state at one instant.
type Snapshot struct {
	// Current is the vertex being expanded, or "" outside an expansion.
	Current string `json:"current,omitempty" yaml:"current,omitempty"`

	// Frontier is the FIFO queue, head first.
	Frontier []string `json:"frontier" yaml:"frontier"`

	// Discovered lists every vertex ever enqueued (the seen set), in
	// discovery order. Order holds the subset already expanded.
	Discovered []string `json:"discovered" yaml:"discovered"`

	// Order lists dequeued vertices, in dequeue order.
	Order []string `json:"order" yaml:"order"`

	// Depth maps each discovered vertex to its distance from the start.
	Depth map[string]int `json:"depth" yaml:"depth"`

	// Parent maps each discovered vertex (except the start) to its
	// predecessor in the BFS tree.
	Parent map[string]string `json:"parent" yaml:"parent"`
}

// Run is the Run type produced by BFS.
type Run = step.Run[Snapshot]

// Order returns the dequeue order recorded by the terminal step.
func Order(run *Run) []string {
	return step.CloneStrings(run.Last().Snapshot.Order)
}

// PathTo reconstructs the path from the start vertex to dest using the
// parent links of the terminal step.
// Returns ErrNoPath if dest was not reached.
func PathTo(run *Run, dest string) ([]string, error) {
	final := run.Last().Snapshot
	if _, ok := final.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := final.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
