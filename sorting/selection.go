// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Selection records selection sort over a copy of values.
//
// For each position i the unsorted suffix is scanned for the extreme value
// (compare steps with Candidate set), the extreme is swapped into i when it
// is not already there, and a boundary step marks i as final.
func Selection(values []int, opts ...Option) (*Run, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := len(values)
	arr := step.CloneInts(values)
	if arr == nil {
		arr = []int{}
	}
	sorted := make([]int, 0, n)
	rec := step.NewRecorder[Snapshot](NameSelection, n*n/2+2*n+2)
	rec.Record(step.KindInit, step.None, snap(arr, sorted, -1),
		fmt.Sprintf("Selection sort (%s) on %d values", o.Order, n))

	for i := 0; i < n-1; i++ {
		if err = step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		cand := i
		for j := i + 1; j < n; j++ {
			rec.Record(step.KindCompare, step.At(cand, j), snap(arr, sorted, cand),
				fmt.Sprintf("Compare candidate %d (index %d) with %d (index %d)", arr[cand], cand, arr[j], j))
			// strict: an equal value never replaces the first-seen candidate
			if o.Order.before(arr[j], arr[cand]) {
				cand = j
			}
		}

		if cand != i {
			arr[i], arr[cand] = arr[cand], arr[i]
			rec.Record(step.KindSwap, step.At(i, cand), snap(arr, sorted, i),
				fmt.Sprintf("Swap index %d and index %d", i, cand))
		}

		sorted = append(sorted, i)
		rec.Record(step.KindBoundary, step.At(i), snap(arr, sorted, -1),
			fmt.Sprintf("Index %d holds %d and is final", i, arr[i]))
	}

	return rec.Finish(step.KindDone, step.None, snap(arr, prefix(n), -1), "Array is sorted")
}
