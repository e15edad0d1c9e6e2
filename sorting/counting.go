// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Counting records counting sort for values in [0, MaxCountingValue].
//
// The count phase records one count step per input index as its bucket is
// incremented; the place phase records one place step per output slot as the
// next non-empty bucket is drained into it. Buckets are drained from the low
// end for Ascending and from the high end for Descending.
func Counting(values []int, opts ...Option) (*Run, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	hi := -1
	for i, v := range values {
		if v < 0 || v > MaxCountingValue {
			return nil, fmt.Errorf("%w: values[%d]=%d not in [0,%d]", ErrValueOutOfRange, i, v, MaxCountingValue)
		}
		if v > hi {
			hi = v
		}
	}

	n := len(values)
	arr := step.CloneInts(values)
	if arr == nil {
		arr = []int{}
	}
	counts := make([]int, hi+1)
	rec := step.NewRecorder[Snapshot](NameCounting, 2*n+2)
	rec.Record(step.KindInit, step.None, counted(arr, nil, counts),
		fmt.Sprintf("Counting sort (%s) on %d values, %d buckets", o.Order, n, len(counts)))

	for i, v := range arr {
		counts[v]++
		rec.Record(step.KindCount, step.At(i), counted(arr, nil, counts),
			fmt.Sprintf("Count value %d (index %d): bucket %d = %d", v, i, v, counts[v]))
	}
	if err = step.Canceled(o.Ctx); err != nil {
		return nil, err
	}

	b := 0
	next := 1
	if o.Order == Descending {
		b, next = hi, -1
	}
	sorted := make([]int, 0, n)
	for p := 0; p < n; p++ {
		for counts[b] == 0 {
			b += next
		}
		arr[p] = b
		counts[b]--
		sorted = append(sorted, p)
		rec.Record(step.KindPlace, step.At(p), counted(arr, sorted, counts),
			fmt.Sprintf("Place %d at index %d", b, p))
	}

	return rec.Finish(step.KindDone, step.None, counted(arr, prefix(n), counts), "Array is sorted")
}

func counted(arr, sorted, counts []int) Snapshot {
	if sorted == nil {
		sorted = []int{}
	}
	s := snap(arr, sorted, -1)
	s.Counts = step.CloneInts(counts)
	return s
}
