// SPDX-License-Identifier: MIT

package search

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// Algorithm names as recorded in Run.Name.
const (
	NameLinear = "linear-search"
	NameBinary = "binary-search"
)

// Option configures a search generator.
type Option func(*Options)

// Options holds the resolved generator settings.
type Options struct {
	// Ctx allows cancellation of long generations.
	Ctx context.Context
}

// DefaultOptions returns a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Snapshot is the renderable state of a search at one instant.
type Snapshot struct {
	// Values is the searched sequence. It is shared by every step of a Run.
	Values []int `json:"values" yaml:"values"`

	// Target is the searched value.
	Target int `json:"target" yaml:"target"`

	// Checked lists the indices examined so far (linear search).
	Checked []int `json:"checked,omitempty" yaml:"checked,omitempty"`

	// Low, Mid and High bound the live window (binary search); -1 when unused.
	Low  int `json:"low" yaml:"low"`
	Mid  int `json:"mid" yaml:"mid"`
	High int `json:"high" yaml:"high"`

	// Found is the matching index, or -1.
	Found int `json:"found" yaml:"found"`
}

// Run is the Run type produced by this package.
type Run = step.Run[Snapshot]

// FoundAt returns the index reported by the terminal step and whether the
// target was found.
func FoundAt(run *Run) (int, bool) {
	last := run.Last()
	return last.Snapshot.Found, last.Kind == step.KindFound
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
