// SPDX-License-Identifier: MIT

package kmp

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// Name is the algorithm name recorded in Run.Name.
const Name = "kmp"

// ErrEmptyPattern is returned when the pattern has no runes.
var ErrEmptyPattern = step.Invalid("kmp: pattern is empty")

// Phase tells which half of the algorithm a Snapshot belongs to.
type Phase string

// Phases.
const (
	PhaseTable Phase = "table"
	PhaseMatch Phase = "match"
)

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

// WithContext sets the context checked once per loop iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Snapshot is the renderable KMP state at one instant.
type Snapshot struct {
	Phase   Phase  `json:"phase" yaml:"phase"`
	Text    string `json:"text" yaml:"text"`
	Pattern string `json:"pattern" yaml:"pattern"`

	// LPS is the failure table as filled so far.
	LPS []int `json:"lps" yaml:"lps"`

	// Border is the running border length of the table scan.
	Border int `json:"border" yaml:"border"`

	// TextIndex and PatternIndex are the compared positions (i, j).
	TextIndex    int `json:"text_index" yaml:"text_index"`
	PatternIndex int `json:"pattern_index" yaml:"pattern_index"`

	// Matches lists the start index of every occurrence found so far.
	Matches []int `json:"matches" yaml:"matches"`
}

// Run is the Run type produced by Search.
type Run = step.Run[Snapshot]

// Matches returns the occurrences recorded by the terminal step.
func Matches(run *Run) []int {
	return step.CloneInts(run.Last().Snapshot.Matches)
}
