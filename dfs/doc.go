// SPDX-License-Identifier: MIT

// Package dfs records depth-first search and DFS-based topological sort on
// a graph.Graph as step.Runs.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, using an explicit LIFO stack (no recursion). Steps:
//   - init           stack = [start]
//   - pop            top of the stack is taken
//   - skip           the popped vertex was already visited
//   - visit          the popped vertex is marked visited
//   - explore-edge   one incident edge, examined in reverse insertion order
//   - push           the unvisited neighbour goes onto the stack
//   - node-complete  every neighbour of the vertex has been examined
//   - done           terminal; the stack is empty
//     Neighbours are pushed in reverse insertion order so the first
//     neighbour is explored first, matching the recursive formulation.
//   - TopologicalSort: colours vertices White, Gray, Black and records
//     visit, explore-edge and node-complete steps. A Gray target is a back
//     edge and aborts with ErrCycleDetected.
//
// Options (DFS):
//
//   - WithContext(ctx)        cancellation, checked once per pop.
//   - WithMaxDepth(d)         never push deeper than d (0 = no limit).
//   - WithFilterNeighbor(fn)  hide edges curr→neighbor when fn returns false.
//   - WithFullTraversal()     restart from every unvisited vertex.
//
// Complexity:
//
//   - DFS:             O(V + E) steps, each carrying an O(V) snapshot copy.
//   - TopologicalSort: O(V + E) steps.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrOptionViolation      negative MaxDepth
//   - ErrUndirected           TopologicalSort on an undirected graph
//   - ErrCycleDetected        TopologicalSort met a back edge
//   - context.Canceled        generation canceled via context
package dfs
