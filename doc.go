// SPDX-License-Identifier: MIT

// Package stepviz records classic algorithms as replayable step sequences
// and plays them back.
//
// 🚀 What is stepviz?
//
//	An engine that runs an algorithm once, eagerly, and keeps every
//	renderable instant as an immutable Step:
//		• Sorting: selection, insertion, bubble, counting
//		• Searching: linear, binary
//		• Graphs: BFS, DFS, topological sort
//		• Strings: Knuth–Morris–Pratt, Rabin–Karp
//		• Trees: binary search tree insert/search/delete and traversals
//		• Linear structures: linked list, bounded stack and queue
//
//	plus one playback controller (play, pause, step, seek, reset, speed)
//	that drives any recorded Run on a timer.
//
// ✨ Guarantees
//
//   - Deterministic: the same input always records the same Run
//   - Contiguous: steps are indexed 0..n-1 and only the last is terminal
//   - Safe cursor: the controller never exposes an out-of-range position
//   - No stale ticks: pause, reset and reload cancel pending advances
//
// Layout:
//
//	step/      — Step, Run, Recorder: the shared data model
//	sorting/ search/ bfs/ dfs/ kmp/ rabinkarp/ bst/ linear/ — generators
//	graph/     — the arena-indexed graph the traversals walk
//	fixture/   — seeded random arrays and graphs
//	player/    — the playback controller
//	catalog/   — name + params → Run, for files and flags
//	cmd/stepviz — CLI: list, generate, play (terminal UI)
//
// Quick example:
//
//	run, _ := sorting.Selection([]int{5, 2, 4, 1, 3})
//	ctrl, _ := player.New()
//	ctrl.Load(run)
//	ctrl.Play()
//
//	go install github.com/katalvlaran/stepviz/cmd/stepviz@latest
package stepviz

// Version is the stepviz release.
const Version = "0.1.0"
