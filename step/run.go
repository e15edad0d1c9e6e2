// SPDX-License-Identifier: MIT

package step

import "fmt"

// Run is the complete ordered sequence of Steps produced for one input.
// A Run is only built through a Recorder and never changes afterwards.
type Run[S any] struct {
	name  string
	steps []Step[S]
}

// Name returns the algorithm name the Run was recorded for.
func (r *Run[S]) Name() string { return r.name }

// Len returns the number of steps.
func (r *Run[S]) Len() int { return len(r.steps) }

// At returns the step at index i, or ErrIndexOutOfRange.
func (r *Run[S]) At(i int) (Step[S], error) {
	if i < 0 || i >= len(r.steps) {
		var zero Step[S]
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(r.steps))
	}
	return r.steps[i], nil
}

// Last returns the terminal step.
func (r *Run[S]) Last() Step[S] {
	return r.steps[len(r.steps)-1]
}

// Steps returns a copy of the step slice. Snapshots are shared.
func (r *Run[S]) Steps() []Step[S] {
	out := make([]Step[S], len(r.steps))
	copy(out, r.steps)
	return out
}

// Describe returns the note of step i, or "" when i is out of range.
func (r *Run[S]) Describe(i int) string {
	if i < 0 || i >= len(r.steps) {
		return ""
	}
	return r.steps[i].Note
}

// Kinds returns the Kind of every step, in order.
func (r *Run[S]) Kinds() []Kind {
	out := make([]Kind, len(r.steps))
	for i := range r.steps {
		out[i] = r.steps[i].Kind
	}
	return out
}

// Count returns how many steps carry kind k.
func (r *Run[S]) Count(k Kind) int {
	n := 0
	for i := range r.steps {
		if r.steps[i].Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the steps whose Kind is one of kinds, in order.
func (r *Run[S]) Filter(kinds ...Kind) []Step[S] {
	want := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		want[k] = struct{}{}
	}
	var out []Step[S]
	for i := range r.steps {
		if _, ok := want[r.steps[i].Kind]; ok {
			out = append(out, r.steps[i])
		}
	}
	return out
}

// Validate checks the structural Run invariants: non-empty, contiguous
// indices, and exactly one terminal step in last position.
func (r *Run[S]) Validate() error {
	if r == nil || len(r.steps) == 0 {
		return fmt.Errorf("%w: %w", ErrBrokenRun, ErrEmptyRun)
	}
	last := len(r.steps) - 1
	for i := range r.steps {
		if r.steps[i].Index != i {
			return brokenf("step %d carries index %d", i, r.steps[i].Index)
		}
		if r.steps[i].Terminal != (i == last) {
			return brokenf("step %d terminal=%t with last=%d", i, r.steps[i].Terminal, last)
		}
	}
	return nil
}
