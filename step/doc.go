// SPDX-License-Identifier: MIT

// Package step defines the shared model every algorithm visualization in
// stepviz is built on: a Step is one observable instant of an algorithm,
// and a Run is the complete, precomputed, ordered sequence of Steps for one
// input.
//
// What
//
//   - Step[S]: index, Kind tag, Subject (the elements concerned), a
//     family-specific Snapshot S and the Terminal flag.
//   - Run[S]: the finished sequence. Runs are immutable once built and may be
//     read concurrently without locking.
//   - Recorder[S]: the only way generators build a Run. It assigns indices,
//     marks the terminal step and seals the Run.
//   - Sequence: the algorithm-agnostic view (Name, Len) the playback
//     controller works with.
//   - Generator[I, S]: anything that turns an input I into a Run[S].
//
// Run invariants
//
//   - Non-empty: at least one step; a single-step Run is both initial and terminal.
//   - Exactly one terminal step, and it is the last element.
//   - Step indices are exactly 0..Len()-1.
//   - Deterministic: generators never consult clocks or randomness, so equal
//     input always yields an equal Run (reflect.DeepEqual).
//
// Ownership
//
//	Snapshots handed to a Recorder must not be mutated afterwards; generators
//	clone their working state (CloneInts, CloneStrings, CloneSet) before
//	recording. Slices reachable from a Step are shared with the Run and must be
//	treated as read-only by consumers.
//
// Errors
//
//   - ErrInvalidInput     root of every generator validation error (errors.Is).
//   - ErrSealed           recording into a Recorder that already finished.
//   - ErrEmptyRun         finishing a Recorder that never recorded a terminal step.
//   - ErrIndexOutOfRange  Run.At with an index outside [0, Len()).
//   - ErrBrokenRun        Validate found a violated invariant.
package step
