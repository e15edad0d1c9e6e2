// SPDX-License-Identifier: MIT

// Package sorting records step-by-step Runs of classic array sorts:
// selection sort, insertion sort, bubble sort and counting sort.
//
// What
//
//   - Selection(values, opts...)  compare / swap / boundary steps.
//   - Insertion(values, opts...)  compare / shift / insert / boundary steps.
//   - Bubble(values, opts...)     compare / swap / boundary steps.
//   - Counting(values, opts...)   count / place steps over a bucket array.
//
// Every Run starts with an init step (the input as given) and ends with a
// terminal done step whose snapshot holds the fully sorted sequence in the
// requested Order.
//
// Determinism & ties
//
//	Comparisons are strict. When several candidates compare equal, selection
//	sort keeps the first-seen index, insertion and bubble sort never move an
//	element past an equal one, so all three are stable with respect to the
//	recorded relocations.
//
// Boundaries
//
//	A boundary step is recorded each time the sorted region grows by one
//	element. Selection and bubble sort record exactly max(0, n-1) boundaries
//	(the last element is in place once every other one is); insertion sort
//	records one per element after the first.
//
// Options
//
//   - WithOrder(Ascending|Descending)  sort direction (default Ascending).
//   - WithContext(ctx)                 cancel a long generation.
//
// Errors
//
//   - ErrOptionViolation   unknown Order.
//   - ErrValueOutOfRange   Counting with a value outside [0, MaxCountingValue].
//   - ctx.Err()            generation cancelled; no Run is returned.
//
// Complexity (n = len(values))
//
//   - Selection, Insertion, Bubble: O(n²) steps, each holding an O(n) snapshot.
//   - Counting: O(n + k) steps where k = max value + 1.
package sorting
