// SPDX-License-Identifier: MIT

// Package catalog is the inbound interface of stepviz: it turns a loosely
// typed Request (an algorithm name plus a parameter map, as read from YAML,
// JSON or flags) into a recorded Run.
//
// Parameters are decoded with mapstructure into per-family structs and
// validated before any generator runs, so a malformed request never yields
// a partial Run. Unknown keys are rejected.
//
//	trace, err := catalog.Generate(ctx, catalog.Request{
//	    Algorithm: "bfs",
//	    Params: map[string]any{
//	        "edges": [][]string{{"A", "B"}, {"A", "C"}, {"B", "D"}},
//	        "start": "A",
//	    },
//	})
//
// Arrays and graphs may be drawn at random instead of listed, through the
// fixture package and an explicit seed:
//
//	params: {random: {n: 8, lo: 1, hi: 99, seed: 42}}
//	params: {random: {n: 6, p: 0.4, seed: 7, symbols: true}, start: A}
//
// BFS and DFS also accept a maze, one row per line, 1 for open cells:
//
//	params: {grid: [[1, 1, 0], [0, 1, 1]], start: "0,0", diagonal: false}
//
// Every returned Trace is a *step.Run of the family's snapshot type; it
// marshals to JSON and YAML as a step.Document.
package catalog
