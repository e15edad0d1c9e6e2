// SPDX-License-Identifier: MIT

// Package search records step-by-step Runs of linear search and binary search
// over integer sequences.
//
// Linear
//
//	One check step per examined index, in order, until a found step (first
//	matching index) or a not-found step after exhaustion. An empty sequence
//	yields a single terminal not-found step and no checks.
//
// Binary
//
//	Each iteration records a check-mid step with Low, Mid and High where
//	mid = (low+high)/2 (integer division, truncating toward zero), followed by
//	go-left or go-right when the target is not at mid. The Run ends with found
//	(Subject = mid) or with not-found once low > high.
//
//	The input must already be sorted ascending. Binary neither sorts nor
//	checks sortedness: on unsorted input it still terminates with a valid,
//	deterministic Run, but whether it reports found is unspecified. Callers
//	that cannot guarantee order should use sorting.IsSorted first.
//
// Options
//
//   - WithContext(ctx)   cancel a long generation.
//
// Complexity (n = len(values))
//
//   - Linear: O(n) steps. Binary: O(log n) steps. Each step copies no data;
//     the sequence itself is shared by every snapshot.
package search
