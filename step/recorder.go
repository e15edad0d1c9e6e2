// SPDX-License-Identifier: MIT

package step

import "fmt"

// Recorder accumulates steps for one Run. Generators call Record for every
// intermediate instant and Finish exactly once for the terminal one.
//
// A Recorder is not safe for concurrent use; it lives inside one generator call.
type Recorder[S any] struct {
	name   string
	steps  []Step[S]
	sealed bool
	err    error
}

// NewRecorder returns a Recorder for algorithm name with room for hint steps.
func NewRecorder[S any](name string, hint int) *Recorder[S] {
	if hint < 0 {
		hint = 0
	}
	return &Recorder[S]{name: name, steps: make([]Step[S], 0, hint)}
}

// Record appends a non-terminal step. Recording after Finish is remembered
// and reported by the next Finish call as ErrSealed.
func (r *Recorder[S]) Record(kind Kind, subject Subject, snapshot S, note string) {
	if r.sealed {
		r.err = fmt.Errorf("%w: Record(%s) after Finish", ErrSealed, kind)
		return
	}
	r.steps = append(r.steps, Step[S]{
		Index:    len(r.steps),
		Kind:     kind,
		Subject:  subject,
		Snapshot: snapshot,
		Note:     note,
	})
}

// Len returns how many steps have been recorded so far.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Finish appends the terminal step and returns the sealed Run.
func (r *Recorder[S]) Finish(kind Kind, subject Subject, snapshot S, note string) (*Run[S], error) {
	if r.sealed {
		return nil, fmt.Errorf("%w: Finish called twice", ErrSealed)
	}
	if r.err != nil {
		return nil, r.err
	}
	r.steps = append(r.steps, Step[S]{
		Index:    len(r.steps),
		Kind:     kind,
		Subject:  subject,
		Snapshot: snapshot,
		Terminal: true,
		Note:     note,
	})
	r.sealed = true

	run := &Run[S]{name: r.name, steps: r.steps}
	r.steps = nil

	return run, nil
}
