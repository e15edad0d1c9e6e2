// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/step"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph      *graph.Graph
	opts       BFSOptions
	ctx        context.Context
	rec        *step.Recorder[Snapshot]
	queue      []queueItem
	seen       map[string]bool
	discovered []string
	order      []string
	depth      map[string]int
	parent     map[string]string
	current    string
}

// BFS records breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *graph.Graph, startID string, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		rec:    step.NewRecorder[Snapshot](Name, 2*(n+g.EdgeCount())+2),
		queue:  make([]queueItem, 0, n),
		seen:   make(map[string]bool, n),
		depth:  make(map[string]int, n),
		parent: make(map[string]string, n),
	}

	// Seed queue with start vertex (no parent)
	w.push(startID, 0)
	w.rec.Record(step.KindInit, step.OnNode(startID), w.snapshot(),
		fmt.Sprintf("Start BFS at %s: frontier = [%s]", startID, startID))

	if err := w.loop(); err != nil {
		return nil, err
	}

	w.current = ""
	return w.rec.Finish(step.KindDone, step.None, w.snapshot(),
		fmt.Sprintf("Frontier empty: visited %d vertices", len(w.order)))
}

// push marks id seen at depth d and appends it to the queue.
func (w *walker) push(id string, d int) {
	w.seen[id] = true
	w.discovered = append(w.discovered, id)
	w.depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := step.Canceled(w.ctx); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.current = item.id
		w.order = append(w.order, item.id)
		w.rec.Record(step.KindDequeue, step.OnNode(item.id), w.snapshot(),
			fmt.Sprintf("Dequeue %s (depth %d)", item.id, item.depth))

		if err := w.explore(item); err != nil {
			return err
		}
	}
	return nil
}

// explore examines each edge of item in insertion order, enqueueing unseen
// neighbours and skipping the rest.
func (w *walker) explore(item queueItem) error {
	arcs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, arc := range arcs {
		if !w.opts.FilterNeighbor(item.id, arc.To) {
			continue
		}
		ref := arc.Ref(item.id)
		w.rec.Record(step.KindExploreEdge, step.Subject{Edge: &ref}, w.snapshot(),
			fmt.Sprintf("Explore edge %s → %s", item.id, arc.To))

		nextDepth := item.depth + 1
		switch {
		case w.seen[arc.To]:
			w.rec.Record(step.KindSkip, step.OnNode(arc.To), w.snapshot(),
				fmt.Sprintf("%s already discovered", arc.To))
		case w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth:
			w.rec.Record(step.KindSkip, step.OnNode(arc.To), w.snapshot(),
				fmt.Sprintf("%s lies beyond max depth %d", arc.To, w.opts.MaxDepth))
		default:
			w.push(arc.To, nextDepth)
			w.parent[arc.To] = item.id
			w.rec.Record(step.KindEnqueue, step.OnNode(arc.To), w.snapshot(),
				fmt.Sprintf("Enqueue %s at depth %d", arc.To, nextDepth))
		}
	}
	return nil
}

// snapshot copies the walker state.
func (w *walker) snapshot() Snapshot {
	frontier := make([]string, len(w.queue))
	for i, it := range w.queue {
		frontier[i] = it.id
	}
	return Snapshot{
		Current:    w.current,
		Frontier:   frontier,
		Discovered: step.CloneStrings(w.discovered),
		Order:      step.CloneStrings(w.order),
		Depth:      step.CloneMap(w.depth),
		Parent:     step.CloneMap(w.parent),
	}
}
