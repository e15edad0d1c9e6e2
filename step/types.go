// SPDX-License-Identifier: MIT

package step

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared by all generators and the Run model.
var (
	// ErrInvalidInput is the root of every generator validation failure.
	// Family packages wrap it in their own sentinels.
	ErrInvalidInput = errors.New("step: invalid input")

	// ErrSealed is returned when a Recorder is used after Finish.
	ErrSealed = errors.New("step: recorder already sealed")

	// ErrEmptyRun is returned when a Run would contain no steps.
	ErrEmptyRun = errors.New("step: run is empty")

	// ErrIndexOutOfRange is returned by Run.At for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("step: index out of range")

	// ErrBrokenRun is returned by Validate when a Run violates its invariants.
	ErrBrokenRun = errors.New("step: run invariant violated")
)

// Invalid builds a family sentinel that also matches ErrInvalidInput.
//
//	var ErrEmptyPattern = step.Invalid("kmp: pattern is empty")
func Invalid(msg string) error {
	return &invalidError{msg: msg}
}

type invalidError struct{ msg string }

func (e *invalidError) Error() string { return e.msg }

// Unwrap lets errors.Is(err, ErrInvalidInput) succeed for every family sentinel.
func (e *invalidError) Unwrap() error { return ErrInvalidInput }

// EdgeRef names one edge of a graph by insertion index and endpoints.
type EdgeRef struct {
	Index int    `json:"index" yaml:"index"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
}

// CharPair is a (text, pattern) position pair used by string matchers.
type CharPair struct {
	Text    int `json:"text" yaml:"text"`
	Pattern int `json:"pattern" yaml:"pattern"`
}

// Subject lists the data elements a Step concerns. Only the fields relevant
// to the Kind are set; the zero Subject means "nothing in particular".
type Subject struct {
	Indices []int     `json:"indices,omitempty" yaml:"indices,omitempty"`
	Node    string    `json:"node,omitempty" yaml:"node,omitempty"`
	Edge    *EdgeRef  `json:"edge,omitempty" yaml:"edge,omitempty"`
	Value   *int      `json:"value,omitempty" yaml:"value,omitempty"`
	Chars   *CharPair `json:"chars,omitempty" yaml:"chars,omitempty"`
}

// None is the empty Subject.
var None = Subject{}

// At returns a Subject over sequence indices.
func At(indices ...int) Subject {
	return Subject{Indices: CloneInts(indices)}
}

// OnNode returns a Subject naming a graph vertex or tree node.
func OnNode(id string) Subject {
	return Subject{Node: id}
}

// OnEdge returns a Subject naming a graph edge.
func OnEdge(index int, from, to string) Subject {
	return Subject{Edge: &EdgeRef{Index: index, From: from, To: to}}
}

// OnValue returns a Subject naming a key value.
func OnValue(v int) Subject {
	return Subject{Value: &v}
}

// OnChars returns a Subject naming a text/pattern position pair.
func OnChars(text, pattern int) Subject {
	return Subject{Chars: &CharPair{Text: text, Pattern: pattern}}
}

// Step is an immutable snapshot of algorithm state at one instant.
type Step[S any] struct {
	// Index is the ordinal position in the Run (0-based, no gaps).
	Index int `json:"index" yaml:"index"`

	// Kind tags what this instant represents.
	Kind Kind `json:"kind" yaml:"kind"`

	// Subject lists the elements this step concerns.
	Subject Subject `json:"subject" yaml:"subject"`

	// Snapshot is the full derived state needed to render this instant.
	Snapshot S `json:"snapshot" yaml:"snapshot"`

	// Terminal is true only on the final step of the Run.
	Terminal bool `json:"terminal,omitempty" yaml:"terminal,omitempty"`

	// Note is a one-line human readable description.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Sequence is the algorithm-agnostic view of a Run used by the playback
// controller: it only needs a name and a length.
type Sequence interface {
	Name() string
	Len() int
}

// Describer is implemented by sequences that can describe each step.
type Describer interface {
	Describe(i int) string
}

// Generator produces a complete Run for an input before playback begins.
type Generator[I, S any] interface {
	Generate(ctx context.Context, in I) (*Run[S], error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc[I, S any] func(ctx context.Context, in I) (*Run[S], error)

// Generate calls f(ctx, in).
func (f GeneratorFunc[I, S]) Generate(ctx context.Context, in I) (*Run[S], error) {
	return f(ctx, in)
}

// Canceled reports ctx.Err() without blocking, or nil while ctx is live.
// Generators call it once per outer loop iteration.
func Canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func brokenf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBrokenRun}, args...)...)
}
