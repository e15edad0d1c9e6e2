// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/linear"
)

// ExampleList_InsertAt links 5 between 1 and 3.
func ExampleList_InsertAt() {
	l := linear.NewList(1, 3)
	run, err := l.InsertAt(2, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range run.Steps() {
		fmt.Printf("%-9s %s\n", s.Kind, s.Note)
	}
	// Output:
	// traverse  Position 1 holds 1
	// link      1 now points to 5, and 5 points to 3
	// done      List: [1 5 3]
}

func ExampleStack_Push() {
	s, _ := linear.NewStack(0, 1, 2)
	run, err := s.Push(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range run.Steps() {
		fmt.Println(st.Note)
	}
	// Output:
	// Push 3; top is now position 3
	// Stack holds 3 of 7: [1 2 3]
}

func ExampleQueue_Dequeue() {
	q, _ := linear.NewQueue(0, 4, 5)
	run, err := q.Dequeue()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range run.Steps() {
		fmt.Println(st.Note)
	}
	// Output:
	// Dequeue 4 from the front
	// Queue holds 1 of 9: [5]
}
