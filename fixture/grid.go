// SPDX-License-Identifier: MIT
// Package: stepviz/fixture
//
// grid.go — GridGraph(cells), a maze over a rectangular grid.
//
// Cells with value ≥ 1 are open and become vertices "x,y" (column, row).
// Open neighbours are joined by undirected edges, orthogonally or with
// diagonals under WithDiagonals. Vertices are added row-major and each
// cell's neighbours are tried in clockwise order from north, so the same
// grid always yields the same adjacency order.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/stepviz/graph"
)

const methodGridGraph = "GridGraph"

var (
	conn4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// GridGraph turns a rectangular grid of cells into a graph over its open
// cells. An empty grid fails with ErrEmptyGrid, ragged rows with
// ErrNonRectangular.
func GridGraph(cells [][]int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", methodGridGraph, ErrEmptyGrid)
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodGridGraph, y, len(row), w, ErrNonRectangular)
		}
	}

	open := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && cells[y][x] >= 1
	}
	offsets := conn4
	if cfg.diagonals {
		offsets = conn8
	}

	g := graph.NewGraph()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if open(x, y) {
				if err := g.AddVertex(CellID(x, y)); err != nil {
					return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodGridGraph, CellID(x, y), err)
				}
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !open(x, y) {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				// each undirected pair once, from its row-major smaller end
				if !open(nx, ny) || ny*w+nx < y*w+x {
					continue
				}
				if _, err := g.AddEdge(CellID(x, y), CellID(nx, ny)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
						methodGridGraph, CellID(x, y), CellID(nx, ny), err)
				}
			}
		}
	}
	return g, nil
}

// CellID names the vertex for column x, row y.
func CellID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
