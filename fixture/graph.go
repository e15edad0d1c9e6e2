// SPDX-License-Identifier: MIT
// Package: stepviz/fixture
//
// graph.go — RandomGraph(n, p), an Erdős–Rényi sample.
//
// Trial order is fixed (i asc, then j asc; j > i when undirected), so a
// seed fully determines the edge set and its insertion order. Self-loops
// are never drawn.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/stepviz/graph"
)

const (
	methodRandomGraph = "RandomGraph"
	minGraphVertices  = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomGraph samples a graph over n vertices, keeping each admissible edge
// independently with probability p. An RNG is required unless p is 0 or 1.
func RandomGraph(n int, p float64, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if n < minGraphVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomGraph, n, minGraphVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomGraph, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomGraph, ErrNeedRandSource)
	}

	g := graph.NewGraph(cfg.graphOptions()...)
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodRandomGraph, ids[i], err)
		}
	}

	keep := func() bool {
		switch {
		case p == probMin:
			return false
		case p == probMax:
			return true
		default:
			return cfg.rng.Float64() < p
		}
	}

	for i := 0; i < n; i++ {
		j0 := i + 1
		if cfg.directed {
			j0 = 0
		}
		for j := j0; j < n; j++ {
			if i == j || !keep() {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomGraph, ids[i], ids[j], err)
			}
		}
	}
	return g, nil
}
