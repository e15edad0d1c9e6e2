// SPDX-License-Identifier: MIT

package player_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/search"
)

// ExampleController plays a binary search to the end on a manual clock.
func ExampleController() {
	run, err := search.Binary([]int{1, 3, 5, 7, 9}, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	clock := player.NewManualClock()
	c, _ := player.New(player.WithClock(clock), player.WithBaseDelay(time.Second))
	defer c.Close()

	c.Subscribe(func(f player.Frame) {
		fmt.Printf("%-8s %d/%d\n", f.State, f.Position, f.Total-1)
	})
	if _, err := c.Load(run); err != nil {
		fmt.Println("error:", err)
		return
	}
	c.Seek(100)
	c.Reset()
	// Output:
	// idle     0/4
	// finished 4/4
	// idle     0/4
}
