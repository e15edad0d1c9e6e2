// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Binary records binary search for target in sorted (ascending) values.
// See the package documentation for the behaviour on unsorted input.
func Binary(sorted []int, target int, opts ...Option) (*Run, error) {
	o := resolve(opts)
	arr := step.CloneInts(sorted)
	if arr == nil {
		arr = []int{}
	}

	rec := step.NewRecorder[Snapshot](NameBinary, 2*bitLen(len(arr))+2)
	base := Snapshot{Values: arr, Target: target, Found: -1}
	low, high := 0, len(arr)-1

	at := func(mid int) Snapshot {
		s := base
		s.Low, s.Mid, s.High = low, mid, high
		return s
	}
	rec.Record(step.KindInit, step.None, at(-1),
		fmt.Sprintf("Search %d in %d sorted values: low=%d high=%d", target, len(arr), low, high))

	for low <= high {
		if err := step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		mid := (low + high) / 2
		rec.Record(step.KindCheckMid, step.At(low, mid, high), at(mid),
			fmt.Sprintf("low=%d mid=%d high=%d: compare %d with %d", low, mid, high, arr[mid], target))

		switch {
		case arr[mid] == target:
			s := at(mid)
			s.Found = mid
			return rec.Finish(step.KindFound, step.At(mid), s,
				fmt.Sprintf("Found %d at index %d", target, mid))
		case target < arr[mid]:
			high = mid - 1
			rec.Record(step.KindGoLeft, step.At(mid), at(mid),
				fmt.Sprintf("%d < %d: continue in [%d,%d]", target, arr[mid], low, high))
		default:
			low = mid + 1
			rec.Record(step.KindGoRight, step.At(mid), at(mid),
				fmt.Sprintf("%d > %d: continue in [%d,%d]", target, arr[mid], low, high))
		}
	}

	return rec.Finish(step.KindNotFound, step.None, at(-1),
		fmt.Sprintf("low=%d > high=%d: %d is not in the sequence", low, high, target))
}

func bitLen(n int) int {
	b := 0
	for ; n > 0; n >>= 1 {
		b++
	}
	return b
}
