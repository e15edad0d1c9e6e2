// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Insertion records insertion sort over a copy of values.
//
// For each i ≥ 1 the key values[i] is lifted out (Held), larger elements of
// the sorted prefix are shifted one slot right (compare + shift steps), the
// key is dropped into the hole (insert step) and the prefix 0..i becomes the
// sorted region (boundary step).
func Insertion(values []int, opts ...Option) (*Run, error) {
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
	if n > 0 {
		sorted = append(sorted, 0)
	}
	rec := step.NewRecorder[Snapshot](NameInsertion, n*n+2*n+2)
	rec.Record(step.KindInit, step.None, snap(arr, sorted, -1),
		fmt.Sprintf("Insertion sort (%s) on %d values", o.Order, n))

	for i := 1; i < n; i++ {
		if err = step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		key := arr[i]
		j := i - 1
		for j >= 0 {
			rec.Record(step.KindCompare, step.At(j, j+1), held(arr, sorted, key),
				fmt.Sprintf("Compare key %d with %d (index %d)", key, arr[j], j))
			if !o.Order.before(key, arr[j]) {
				break
			}
			arr[j+1] = arr[j]
			rec.Record(step.KindShift, step.At(j, j+1), held(arr, sorted, key),
				fmt.Sprintf("Shift %d from index %d to %d", arr[j], j, j+1))
			j--
		}

		arr[j+1] = key
		rec.Record(step.KindInsert, step.At(j+1), snap(arr, sorted, -1),
			fmt.Sprintf("Insert key %d at index %d", key, j+1))

		sorted = append(sorted, i)
		rec.Record(step.KindBoundary, step.At(i), snap(arr, sorted, -1),
			fmt.Sprintf("Indices 0..%d are sorted", i))
	}

	return rec.Finish(step.KindDone, step.None, snap(arr, prefix(n), -1), "Array is sorted")
}

func held(arr, sorted []int, key int) Snapshot {
	s := snap(arr, sorted, -1)
	s.Held = &key
	return s
}
