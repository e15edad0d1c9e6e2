// SPDX-License-Identifier: MIT

package rabinkarp

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// Name is the algorithm name recorded in Run.Name.
const Name = "rabin-karp"

// Hash parameters.
const (
	Base    = 256
	Modulus = 101
)

// ErrEmptyPattern is returned when the pattern has no runes.
var ErrEmptyPattern = step.Invalid("rabinkarp: pattern is empty")

// Option configures Search.
type Option func(*Options)

// Options holds the resolved settings.
type Options struct {
	// Ctx allows cancellation of long generations.
	Ctx context.Context
}

// DefaultOptions returns a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked once per window.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Snapshot is the renderable Rabin-Karp state at one instant.
type Snapshot struct {
	Text    string `json:"text" yaml:"text"`
	Pattern string `json:"pattern" yaml:"pattern"`

	// WindowStart and WindowEnd bound the current window, both inclusive.
	// They are -1 when no window fits.
	WindowStart int `json:"window_start" yaml:"window_start"`
	WindowEnd   int `json:"window_end" yaml:"window_end"`

	PatternHash int `json:"pattern_hash" yaml:"pattern_hash"`
	WindowHash  int `json:"window_hash" yaml:"window_hash"`

	// Verified counts the runes confirmed equal in the current window.
	Verified int `json:"verified" yaml:"verified"`

	Matches    []int `json:"matches" yaml:"matches"`
	Collisions []int `json:"collisions" yaml:"collisions"`
}

// Run is the Run type produced by Search.
type Run = step.Run[Snapshot]

// Matches returns the occurrences recorded by the terminal step.
func Matches(run *Run) []int {
	return step.CloneInts(run.Last().Snapshot.Matches)
}

// Collisions returns the windows whose hash matched spuriously.
func Collisions(run *Run) []int {
	return step.CloneInts(run.Last().Snapshot.Collisions)
}
