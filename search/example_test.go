// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/search"
)

// ExampleBinary prints the note of every step.
func ExampleBinary() {
	run, err := search.Binary([]int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91}, 23)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < run.Len(); i++ {
		fmt.Println(run.Describe(i))
	}
	// Output:
	// Search 23 in 10 sorted values: low=0 high=9
	// low=0 mid=4 high=9: compare 16 with 23
	// 23 > 16: continue in [5,9]
	// low=5 mid=7 high=9: compare 56 with 23
	// 23 < 56: continue in [5,6]
	// low=5 mid=5 high=6: compare 23 with 23
	// Found 23 at index 5
}
