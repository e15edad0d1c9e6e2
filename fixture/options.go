// SPDX-License-Identifier: MIT
// Package: stepviz/fixture
//
// options.go — functional options and the resolved config.
//
// Defaults: decimal vertex IDs, no RNG, undirected graphs.

package fixture

import (
	"math/rand"

	"github.com/katalvlaran/stepviz/graph"
)

// Option customizes a constructor by mutating a config before it runs.
type Option func(*config)

type config struct {
	idFn      IDFn
	rng       *rand.Rand
	directed  bool
	diagonals bool
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) graphOptions() []graph.GraphOption {
	return []graph.GraphOption{graph.WithDirected(c.directed)}
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("fixture: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSymbolIDs labels vertices "A".."Z".
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithPrefixIDs labels vertices prefix+index, e.g. "v0", "v1".
func WithPrefixIDs(prefix string) Option { return WithIDScheme(PrefixIDFn(prefix)) }

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected makes RandomGraph build a directed graph.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithDiagonals makes GridGraph join diagonal neighbours too.
func WithDiagonals() Option {
	return func(c *config) { c.diagonals = true }
}
