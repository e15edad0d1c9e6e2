// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Bubble records bubble sort over a copy of values. Pass i compares each
// adjacent pair of the unsorted prefix, swapping out-of-order pairs, and
// ends with a boundary step for index n-1-i.
func Bubble(values []int, opts ...Option) (*Run, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := len(values)
	arr := step.CloneInts(values)
	if arr == nil {
		arr = []int{}
	}
	var sorted []int
	rec := step.NewRecorder[Snapshot](NameBubble, n*n+n+2)
	rec.Record(step.KindInit, step.None, snap(arr, []int{}, -1),
		fmt.Sprintf("Bubble sort (%s) on %d values", o.Order, n))

	for i := 0; i < n-1; i++ {
		if err = step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		for j := 0; j < n-i-1; j++ {
			rec.Record(step.KindCompare, step.At(j, j+1), snap(arr, ascending(sorted), -1),
				fmt.Sprintf("Compare %d (index %d) with %d (index %d)", arr[j], j, arr[j+1], j+1))
			if o.Order.before(arr[j+1], arr[j]) {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				rec.Record(step.KindSwap, step.At(j, j+1), snap(arr, ascending(sorted), -1),
					fmt.Sprintf("Swap index %d and index %d", j, j+1))
			}
		}

		sorted = append(sorted, n-1-i)
		rec.Record(step.KindBoundary, step.At(n-1-i), snap(arr, ascending(sorted), -1),
			fmt.Sprintf("Index %d holds %d and is final", n-1-i, arr[n-1-i]))
	}

	return rec.Finish(step.KindDone, step.None, snap(arr, prefix(n), -1), "Array is sorted")
}

// ascending returns the bubble-sort suffix indices in ascending order.
func ascending(desc []int) []int {
	out := make([]int, len(desc))
	for i, v := range desc {
		out[len(desc)-1-i] = v
	}
	return out
}
