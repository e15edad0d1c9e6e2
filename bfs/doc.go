// SPDX-License-Identifier: MIT

// Package bfs records breadth-first search over a graph.Graph as a
// step.Run, one Step per queue operation and per examined edge.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Emit one Step for every instant a viewer should see:
//   - init          frontier = [start]
//   - dequeue       head of the FIFO frontier is taken for expansion
//   - explore-edge  one incident edge of the expanded vertex
//   - enqueue       the neighbour was never seen and joins the frontier
//   - skip          the neighbour was already seen (or lies beyond MaxDepth)
//   - done          terminal; the frontier is empty
//   - Every Snapshot carries Frontier, Discovered, Order, Depth and Parent, so a
//     renderer can draw any step without replaying earlier ones.
//   - A vertex is "seen" from the moment it is enqueued; it is never enqueued twice.
//   - Vertices unreachable from start never appear in any Snapshot.
//
// Determinism
//
//	graph.Neighbors returns arcs in edge insertion order and BFS enqueues
//	in that order, so the Run is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) steps, each carrying an O(V) snapshot copy.
//   - Memory: O(V·(V + E)) for the full Run.
//
// Usage
//
//	run, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ctx.Err()
//	}
//	path, _ := bfs.PathTo(run, "D")
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, no filtering.
//   - WithContext(ctx):       cancel long generations.
//   - WithMaxDepth(d):        never enqueue beyond depth d (>0).
//   - WithFilterNeighbor(fn): hide edges for which fn(curr,neighbor)==false.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo when dest was not reached.
package bfs
