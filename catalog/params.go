// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/stepviz/fixture"
	"github.com/katalvlaran/stepviz/graph"
)

// decode maps params onto out, rejecting unknown keys and inexact integers.
func decode(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(exactInt),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("%w: %w", ErrBadParams, err)
	}
	return nil
}

// exactInt stops floats and bools from being truncated into int fields.
// Integral floats pass, since JSON numbers arrive as float64.
func exactInt(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case bool:
		return nil, fmt.Errorf("%w: %v is not an integer", ErrBadParams, v)
	default:
		return data, nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrBadParams, f)
	}
	return data, nil
}

// defaultRandomHi bounds random arrays when neither lo nor hi is given.
const defaultRandomHi = 99

// randomValues draws an array through fixture.
type randomValues struct {
	N    int   `mapstructure:"n"`
	Lo   int   `mapstructure:"lo"`
	Hi   int   `mapstructure:"hi"`
	Seed int64 `mapstructure:"seed"`
}

// arrayParams feeds sorting and searching.
type arrayParams struct {
	Values []int         `mapstructure:"values"`
	Random *randomValues `mapstructure:"random"`
	Order  string        `mapstructure:"order"`
	Target *int          `mapstructure:"target"`
}

func (p arrayParams) values(sorted bool) ([]int, error) {
	if p.Random == nil {
		if p.Values == nil {
			return []int{}, nil
		}
		return p.Values, nil
	}
	if p.Values != nil {
		return nil, fmt.Errorf("%w: values and random are exclusive", ErrBadParams)
	}
	r := p.Random
	if r.Hi == 0 && r.Lo == 0 {
		r.Hi = defaultRandomHi
	}
	if sorted {
		return fixture.SortedValues(r.N, r.Lo, r.Hi, fixture.WithSeed(r.Seed))
	}
	return fixture.RandomValues(r.N, r.Lo, r.Hi, fixture.WithSeed(r.Seed))
}

// randomGraph samples a graph through fixture.
type randomGraph struct {
	N       int     `mapstructure:"n"`
	P       float64 `mapstructure:"p"`
	Seed    int64   `mapstructure:"seed"`
	Symbols bool    `mapstructure:"symbols"`
}

// graphParams feeds the traversal families.
type graphParams struct {
	Vertices []string     `mapstructure:"vertices"`
	Edges    [][]string   `mapstructure:"edges"`
	Directed bool         `mapstructure:"directed"`
	Random   *randomGraph `mapstructure:"random"`
	Grid     [][]int      `mapstructure:"grid"`
	Diagonal bool         `mapstructure:"diagonal"`
	Start    string       `mapstructure:"start"`
	MaxDepth int          `mapstructure:"max_depth"`
	Full     bool         `mapstructure:"full"`
}

// build returns the graph and the start vertex, defaulting to the first
// vertex.
func (p graphParams) build(forceDirected bool) (*graph.Graph, string, error) {
	directed := p.Directed || forceDirected
	var (
		g   *graph.Graph
		err error
	)
	sources := 0
	for _, set := range []bool{len(p.Vertices) > 0 || len(p.Edges) > 0, p.Random != nil, p.Grid != nil} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, "", fmt.Errorf("%w: vertices/edges, random and grid are exclusive", ErrBadParams)
	}

	switch {
	case p.Grid != nil:
		if directed {
			return nil, "", fmt.Errorf("%w: grid graphs are undirected", ErrBadParams)
		}
		var opts []fixture.Option
		if p.Diagonal {
			opts = append(opts, fixture.WithDiagonals())
		}
		g, err = fixture.GridGraph(p.Grid, opts...)
	case p.Random != nil:
		opts := []fixture.Option{fixture.WithSeed(p.Random.Seed)}
		if p.Random.Symbols {
			opts = append(opts, fixture.WithSymbolIDs())
		}
		if directed {
			opts = append(opts, fixture.WithDirected())
		}
		g, err = fixture.RandomGraph(p.Random.N, p.Random.P, opts...)
	default:
		var edges [][2]string
		edges, err = pairs(p.Edges)
		if err != nil {
			return nil, "", err
		}
		vertices := p.Vertices
		if len(vertices) == 0 {
			vertices = endpoints(edges)
		}
		g, err = graph.FromEdgeList(vertices, edges, graph.WithDirected(directed))
	}
	if err != nil {
		return nil, "", err
	}

	start := p.Start
	if start == "" && g.VertexCount() > 0 {
		start = g.Vertices()[0]
	}
	return g, start, nil
}

func pairs(edges [][]string) ([][2]string, error) {
	out := make([][2]string, len(edges))
	for i, e := range edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrBadParams, i, len(e))
		}
		out[i] = [2]string{e[0], e[1]}
	}
	return out, nil
}

// endpoints lists edge endpoints in first-seen order.
func endpoints(edges [][2]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range edges {
		for _, v := range e {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// textParams feeds the string matchers.
type textParams struct {
	Text    string `mapstructure:"text"`
	Pattern string `mapstructure:"pattern"`
}

// treeParams feeds the BST operations. Values build the starting tree.
type treeParams struct {
	Values []int `mapstructure:"values"`
	Value  *int  `mapstructure:"value"`
}

// linearParams feeds the list, stack and queue operations.
type linearParams struct {
	Values   []int  `mapstructure:"values"`
	Op       string `mapstructure:"op"`
	Value    *int   `mapstructure:"value"`
	Position int    `mapstructure:"position"`
	Capacity int    `mapstructure:"capacity"`
}

func need(v *int, key string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrBadParams, key)
	}
	return *v, nil
}
