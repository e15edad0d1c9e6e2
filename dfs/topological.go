// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graph.Graph
	opts  topoOptions
	rec   *step.Recorder[Snapshot]
	state map[string]int // 0=White, 1=Gray, 2=Black
	path  []string       // Gray vertices, root first
	order []string       // visit order
	post  []string       // post-order
	depth map[string]int
	par   map[string]string
}

// TopologicalSort records a DFS-based topological sort of the directed
// graph g. Roots are taken in vertex insertion order. Snapshot.Stack shows
// the current path of Gray vertices and Snapshot.Completed the post-order;
// TopoOrder reads the final ordering from the Run.
//
// Returns ErrGraphNil, ErrUndirected, or ErrCycleDetected (naming the back
// edge) when the graph has no topological order.
func TopologicalSort(g *graph.Graph, options ...TopoOption) (*Run, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirected
	}
	// 3. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		rec:   step.NewRecorder[Snapshot](NameTopo, 2*len(verts)+g.EdgeCount()+2),
		state: make(map[string]int, len(verts)),
		depth: make(map[string]int, len(verts)),
		par:   make(map[string]string, len(verts)),
	}
	t.rec.Record(step.KindInit, step.None, t.snapshot(""),
		fmt.Sprintf("Topological sort over %d vertices", len(verts)))

	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v, "", 0); err != nil {
				return nil, err
			}
		}
	}

	return t.rec.Finish(step.KindDone, step.None, t.snapshot(""),
		fmt.Sprintf("Topological order: %s", strings.Join(reversed(t.post), " → ")))
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id, parent string, d int) error {
	if err := step.Canceled(t.opts.ctx); err != nil {
		return err
	}

	t.state[id] = Gray
	t.path = append(t.path, id)
	t.order = append(t.order, id)
	t.depth[id] = d
	if parent != "" {
		t.par[id] = parent
	}
	t.rec.Record(step.KindVisit, step.OnNode(id), t.snapshot(id),
		fmt.Sprintf("Visit %s", id))

	arcs, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, arc := range arcs {
		ref := arc.Ref(id)
		edge := step.Subject{Edge: &ref}
		switch t.state[arc.To] {
		case Gray:
			// back edge
			return fmt.Errorf("%w: %s → %s closes a cycle", ErrCycleDetected, id, arc.To)
		case Black:
			t.rec.Record(step.KindExploreEdge, edge, t.snapshot(id),
				fmt.Sprintf("Explore edge %s → %s: already finished", id, arc.To))
		default:
			t.rec.Record(step.KindExploreEdge, edge, t.snapshot(id),
				fmt.Sprintf("Explore edge %s → %s", id, arc.To))
			if err := t.visit(arc.To, id, d+1); err != nil {
				return err
			}
		}
	}

	t.state[id] = Black
	t.path = t.path[:len(t.path)-1]
	t.post = append(t.post, id)
	t.rec.Record(step.KindNodeComplete, step.OnNode(id), t.snapshot(id),
		fmt.Sprintf("%s finished; prepend to order", id))

	return nil
}

func (t *topoSorter) snapshot(current string) Snapshot {
	return Snapshot{
		Current:   current,
		Stack:     step.CloneStrings(t.path),
		Visited:   step.CloneStrings(t.order),
		Completed: step.CloneStrings(t.post),
		Depth:     step.CloneMap(t.depth),
		Parent:    step.CloneMap(t.par),
	}
}

// TopoOrder returns the topological order recorded by a TopologicalSort Run:
// the reverse of its post-order.
func TopoOrder(run *Run) []string {
	return reversed(run.Last().Snapshot.Completed)
}

// reversed returns a new slice containing the elements of s in reverse order.
func reversed(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
