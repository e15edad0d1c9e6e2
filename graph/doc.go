// SPDX-License-Identifier: MIT

// Package graph provides the small arena-indexed graph consumed by the bfs
// and dfs step generators.
//
// Vertices and edges are records kept in insertion order:
//
//   - vertex id → position in Vertices()
//   - edge index → Edge{Index, From, To}
//
// Neighbors(id) returns the incident arcs of a vertex in edge insertion
// order, so every traversal over a Graph is deterministic without sorting.
// An undirected edge appears in the neighbour list of both endpoints; a
// self-loop appears once.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only the from→to arc.
//
//	– WithMultiEdges()
//	    Allows parallel edges. Otherwise a second AddEdge(from,to)
//	    → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1), idempotent
//	AddEdge(from, to string) (int, error)      // O(1)†, adds missing endpoints
//	HasVertex(id string) bool                  // O(1)
//	HasEdge(from, to string) bool              // O(d)
//	Neighbors(id string) ([]Arc, error)        // O(d), insertion order
//	Vertices() []string                        // O(V), insertion order
//	Edges() []Edge                             // O(E), insertion order
//	FromEdgeList(vertices, edges, opts...)     // O(V+E)
//
// † O(d) with multi-edges disabled, for the parallel-edge check.
//
// Errors (all match step.ErrInvalidInput):
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// A Graph is safe for concurrent use.
package graph
