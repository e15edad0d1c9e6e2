// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// AddVertex inserts id. Re-adding an existing id is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.position[id]; ok {
		return
	}
	g.position[id] = len(g.order)
	g.order = append(g.order, id)
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// new edge index.
func (g *Graph) AddEdge(from, to string) (int, error) {
	if from == "" || to == "" {
		return -1, ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return -1, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return -1, fmt.Errorf("%w: %q-%q", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Index: idx, From: from, To: to})
	g.incident[from] = append(g.incident[from], idx)
	if !g.directed && from != to {
		g.incident[to] = append(g.incident[to], idx)
	}

	return idx, nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.position[id]

	return ok
}

// HasEdge reports whether at least one edge joins from to to. In an
// undirected graph the orientation is ignored.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, idx := range g.incident[from] {
		if g.other(g.edges[idx], from) == to {
			return true
		}
	}

	return false
}

// other returns the endpoint of e opposite to v.
func (g *Graph) other(e Edge, v string) string {
	if e.From == v {
		return e.To
	}
	return e.From
}

// Neighbors returns the arcs leaving id in edge insertion order.
// Parallel edges are repeated; a self-loop appears once.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.position[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	list := g.incident[id]
	out := make([]Arc, 0, len(list))
	for _, idx := range list {
		e := g.edges[idx]
		out = append(out, Arc{Edge: e, To: g.other(e, id)})
	}

	return out, nil
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// FromEdgeList builds a graph over the declared vertices, in order, then
// adds edges in order. An edge naming an undeclared vertex fails with
// ErrVertexNotFound.
func FromEdgeList(vertices []string, edges [][2]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for i, e := range edges {
		for _, end := range e {
			if !g.HasVertex(end) {
				return nil, fmt.Errorf("%w: edge %d references %q", ErrVertexNotFound, i, end)
			}
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}
