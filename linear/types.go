// SPDX-License-Identifier: MIT

package linear

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/stepviz/step"
)

// Algorithm names recorded in Run.Name.
const (
	NameList  = "linked-list"
	NameStack = "stack"
	NameQueue = "queue"
)

// Default capacities.
const (
	DefaultStackCapacity = 7
	DefaultQueueCapacity = 9
)

// Structure names the container a Snapshot belongs to.
type Structure string

// Structures.
const (
	StructList  Structure = "list"
	StructStack Structure = "stack"
	StructQueue Structure = "queue"
)

// Sentinel errors. Position and capacity violations match step.ErrInvalidInput.
var (
	// ErrPositionOutOfRange is returned for a list position outside the valid range.
	ErrPositionOutOfRange = step.Invalid("linear: position out of range")

	// ErrOptionViolation is returned for a non-positive capacity.
	ErrOptionViolation = step.Invalid("linear: invalid option supplied")

	// ErrFull is returned when a Stack or Queue is at capacity.
	ErrFull = errors.New("linear: container is full")

	// ErrEmpty is returned when removing from an empty container.
	ErrEmpty = errors.New("linear: container is empty")
)

// Item is one element as rendered.
type Item struct {
	ID    int `json:"id" yaml:"id"`
	Value int `json:"value" yaml:"value"`
}

// Snapshot is the renderable container state at one instant.
type Snapshot struct {
	Structure Structure `json:"structure" yaml:"structure"`

	// Items lists the elements head→tail (list), bottom→top (stack) or
	// front→back (queue).
	Items []Item `json:"items" yaml:"items"`

	// Cursor is the 1-based position being looked at, or 0.
	Cursor int `json:"cursor" yaml:"cursor"`

	// Capacity is the size bound, or 0 for the unbounded list.
	Capacity int `json:"capacity,omitempty" yaml:"capacity,omitempty"`

	// Detached is an element removed by this operation, still shown apart.
	Detached *Item `json:"detached,omitempty" yaml:"detached,omitempty"`
}

// Run is the Run type produced by every operation in this package.
type Run = step.Run[Snapshot]

// ids hands out element IDs.
type ids struct{ next int }

func (g *ids) take() int {
	id := g.next
	g.next++
	return id
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func values(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

// itemSubject names an element by ID, value and 1-based position.
func itemSubject(it Item, pos int) step.Subject {
	s := step.OnValue(it.Value)
	s.Indices = []int{pos}
	s.Node = strconv.Itoa(it.ID)
	return s
}
