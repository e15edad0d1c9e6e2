// SPDX-License-Identifier: MIT

// Package kmp records the Knuth-Morris-Pratt string search as a step.Run.
//
// The Run has two phases:
//
//  1. Failure table. The two-pointer scan over the pattern records one lps
//     step per comparison: extend the current border, fall back to
//     lps[len-1], or set lps[i] = 0.
//  2. Matching. Each text/pattern comparison records match or mismatch.
//     A mismatch with a non-zero pattern index is followed by a fallback
//     step (j = lps[j-1]); with j = 0 the text index advances instead.
//     A full match records found at index i-m and continues from
//     lps[m-1], so overlapping occurrences are all reported.
//
// The terminal done step carries every match start in Snapshot.Matches.
//
// Text and pattern are compared as runes; every index in a Snapshot is a
// rune index.
//
// Errors:
//
//   - ErrEmptyPattern  the pattern has no runes.
//
// Complexity (n = text runes, m = pattern runes)
//
//   - O(n + m) steps; each snapshot copies the failure table, O(m).
package kmp
