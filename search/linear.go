// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Linear records a left-to-right scan of values for target.
func Linear(values []int, target int, opts ...Option) (*Run, error) {
	o := resolve(opts)
	arr := step.CloneInts(values)
	if arr == nil {
		arr = []int{}
	}

	rec := step.NewRecorder[Snapshot](NameLinear, len(arr)+1)
	base := Snapshot{Values: arr, Target: target, Low: -1, Mid: -1, High: -1, Found: -1}
	checked := make([]int, 0, len(arr))

	for i, v := range arr {
		if err := step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		checked = append(checked, i)
		s := base
		s.Checked = step.CloneInts(checked)
		if v == target {
			s.Found = i
			return rec.Finish(step.KindFound, step.At(i), s,
				fmt.Sprintf("Found %d at index %d", target, i))
		}
		rec.Record(step.KindCheck, step.At(i), s,
			fmt.Sprintf("Index %d holds %d, not %d", i, v, target))
	}

	s := base
	s.Checked = step.CloneInts(checked)
	return rec.Finish(step.KindNotFound, step.None, s,
		fmt.Sprintf("%d is not in the sequence", target))
}
