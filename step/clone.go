// SPDX-License-Identifier: MIT

package step

import "sort"

// CloneInts returns an independent copy of s (nil stays nil).
func CloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// CloneStrings returns an independent copy of s (nil stays nil).
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CloneSet returns the members of set sorted ascending, as an independent slice.
// Sets are stored sorted in snapshots so equal states compare equal.
func CloneSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// CloneMap returns an independent copy of m (nil stays nil).
func CloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
