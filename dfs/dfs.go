// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

// frame is one entry of the explicit stack.
type frame struct {
	id     string
	depth  int
	parent string // empty for a root
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph     *graph.Graph
	opts      DFSOptions
	ctx       context.Context
	rec       *step.Recorder[Snapshot]
	stack     []frame
	visited   map[string]bool
	order     []string
	completed []string
	depth     map[string]int
	parent    map[string]string
	current   string
}

// DFS records depth-first search on g from startID using an explicit stack.
// A vertex is marked visited when it is popped, so a vertex pushed twice is
// popped once more and skipped. With WithFullTraversal, startID may be ""
// and the walk restarts from every unvisited vertex in insertion order.
func DFS(g *graph.Graph, startID string, opts ...Option) (*Run, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Verify startID unless a forest walk was asked for without one
	if !(o.FullTraversal && startID == "") && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		rec:     step.NewRecorder[Snapshot](Name, 3*n+2*g.EdgeCount()+2),
		visited: make(map[string]bool, n),
		depth:   make(map[string]int, n),
		parent:  make(map[string]string, n),
	}

	// 4. Seed and drain the stack
	if startID != "" {
		w.stack = append(w.stack, frame{id: startID})
		w.rec.Record(step.KindInit, step.OnNode(startID), w.snapshot(),
			fmt.Sprintf("Start DFS at %s: stack = [%s]", startID, startID))
	} else {
		w.rec.Record(step.KindInit, step.None, w.snapshot(), "Start full DFS traversal")
	}
	if err := w.drain(); err != nil {
		return nil, err
	}

	// 5. Forest mode: restart from each unvisited vertex
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.visited[v] {
				continue
			}
			w.stack = append(w.stack, frame{id: v})
			w.rec.Record(step.KindPush, step.OnNode(v), w.snapshot(),
				fmt.Sprintf("Restart from unvisited %s", v))
			if err := w.drain(); err != nil {
				return nil, err
			}
		}
	}

	return w.rec.Finish(step.KindDone, step.None, w.snapshot(),
		fmt.Sprintf("Stack empty: visit order %s", strings.Join(w.order, " → ")))
}

// drain pops until the stack is empty or ctx is done.
func (w *dfsWalker) drain() error {
	for len(w.stack) > 0 {
		if err := step.Canceled(w.ctx); err != nil {
			return err
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.current = top.id
		w.rec.Record(step.KindPop, step.OnNode(top.id), w.snapshot(),
			fmt.Sprintf("Pop %s", top.id))

		if w.visited[top.id] {
			w.rec.Record(step.KindSkip, step.OnNode(top.id), w.snapshot(),
				fmt.Sprintf("%s already visited", top.id))
			continue
		}

		w.visited[top.id] = true
		w.order = append(w.order, top.id)
		w.depth[top.id] = top.depth
		if top.parent != "" {
			w.parent[top.id] = top.parent
		}
		w.rec.Record(step.KindVisit, step.OnNode(top.id), w.snapshot(),
			fmt.Sprintf("Visit %s (depth %d)", top.id, top.depth))

		if err := w.expand(top); err != nil {
			return err
		}

		w.completed = append(w.completed, top.id)
		w.rec.Record(step.KindNodeComplete, step.OnNode(top.id), w.snapshot(),
			fmt.Sprintf("All neighbours of %s examined", top.id))
	}
	w.current = ""
	return nil
}

// expand examines the edges of f in reverse insertion order so that the
// first neighbour ends on top of the stack.
func (w *dfsWalker) expand(f frame) error {
	arcs, err := w.graph.Neighbors(f.id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
	}
	for i := len(arcs) - 1; i >= 0; i-- {
		arc := arcs[i]
		if !w.opts.FilterNeighbor(f.id, arc.To) {
			continue
		}
		ref := arc.Ref(f.id)
		edge := step.Subject{Edge: &ref}
		next := f.depth + 1

		switch {
		case w.visited[arc.To]:
			w.rec.Record(step.KindExploreEdge, edge, w.snapshot(),
				fmt.Sprintf("Explore edge %s → %s: already visited", f.id, arc.To))
		case w.opts.MaxDepth > 0 && next > w.opts.MaxDepth:
			w.rec.Record(step.KindExploreEdge, edge, w.snapshot(),
				fmt.Sprintf("Explore edge %s → %s: beyond max depth %d", f.id, arc.To, w.opts.MaxDepth))
		default:
			w.rec.Record(step.KindExploreEdge, edge, w.snapshot(),
				fmt.Sprintf("Explore edge %s → %s", f.id, arc.To))
			w.stack = append(w.stack, frame{id: arc.To, depth: next, parent: f.id})
			w.rec.Record(step.KindPush, step.OnNode(arc.To), w.snapshot(),
				fmt.Sprintf("Push %s", arc.To))
		}
	}
	return nil
}

func (w *dfsWalker) snapshot() Snapshot {
	stack := make([]string, len(w.stack))
	for i, f := range w.stack {
		stack[i] = f.id
	}
	return Snapshot{
		Current:   w.current,
		Stack:     stack,
		Visited:   step.CloneStrings(w.order),
		Completed: step.CloneStrings(w.completed),
		Depth:     step.CloneMap(w.depth),
		Parent:    step.CloneMap(w.parent),
	}
}
