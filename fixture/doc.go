// SPDX-License-Identifier: MIT

// Package fixture builds deterministic inputs for the step generators:
// integer arrays for sorting and searching, and small random graphs and
// grid mazes for the traversal families.
//
// Randomness is confined to this package. Every stochastic constructor
// requires an explicit source (WithSeed or WithRand) so a fixture, and the
// Run recorded from it, is reproducible:
//
//	vals, _ := fixture.RandomValues(8, 1, 99, fixture.WithSeed(42))
//	g, _ := fixture.RandomGraph(6, 0.4, fixture.WithSeed(7), fixture.WithSymbolIDs())
//	maze, _ := fixture.GridGraph([][]int{{1, 1, 0}, {0, 1, 1}})
//
// Options follow the functional style; option constructors panic on
// meaningless values (nil functions), constructors never panic and report
// validation failures through the sentinels in errors.go.
package fixture
