// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors. Both match step.ErrInvalidInput.
var (
	// ErrUnknownAlgorithm is returned for a name Names does not list.
	ErrUnknownAlgorithm = step.Invalid("catalog: unknown algorithm")

	// ErrBadParams is returned when params cannot be decoded or are
	// missing a required field.
	ErrBadParams = step.Invalid("catalog: malformed params")
)

// Trace is the family-independent view of a recorded Run.
type Trace interface {
	step.Sequence
	step.Describer
	Validate() error
	Kinds() []step.Kind
}

var _ Trace = (*step.Run[struct{}])(nil)

// Request names an algorithm and its raw parameters.
type Request struct {
	Algorithm string         `mapstructure:"algorithm" json:"algorithm" yaml:"algorithm"`
	Params    map[string]any `mapstructure:"params" json:"params,omitempty" yaml:"params,omitempty"`
}

// Family groups algorithms that share a snapshot type.
type Family string

// Families.
const (
	FamilySorting   Family = "sorting"
	FamilySearching Family = "searching"
	FamilyGraph     Family = "graph"
	FamilyString    Family = "string"
	FamilyTree      Family = "tree"
	FamilyLinear    Family = "linear"
)

// Info describes one catalog entry.
type Info struct {
	Name    string
	Family  Family
	Summary string
	// Params lists the accepted parameter keys.
	Params []string
}

type generateFunc func(ctx context.Context, params map[string]any) (Trace, error)

type entry struct {
	info Info
	gen  generateFunc
}

var registry = map[string]entry{}

func register(info Info, gen generateFunc) {
	if _, dup := registry[info.Name]; dup {
		panic("catalog: duplicate algorithm " + info.Name)
	}
	registry[info.Name] = entry{info: info, gen: gen}
}

// Names returns every algorithm name, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the entry for name.
func Lookup(name string) (Info, bool) {
	e, ok := registry[name]
	return e.info, ok
}

// Infos returns every entry ordered by family, then name.
func Infos() []Info {
	out := make([]Info, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Generate validates req and records the Run.
func Generate(ctx context.Context, req Request) (Trace, error) {
	e, ok := registry[req.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := step.Canceled(ctx); err != nil {
		return nil, err
	}
	return e.gen(ctx, req.Params)
}
