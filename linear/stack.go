// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Stack is a bounded LIFO stack of ints. The zero value is an empty stack
// with DefaultStackCapacity.
type Stack struct {
	items    []Item // bottom first
	capacity int
	ids      ids
}

// NewStack returns a stack with the given capacity holding values bottom
// first. A capacity of 0 means DefaultStackCapacity.
func NewStack(capacity int, values ...int) (*Stack, error) {
	capacity, err := resolveCapacity(capacity, DefaultStackCapacity, len(values))
	if err != nil {
		return nil, err
	}
	s := &Stack{capacity: capacity, items: make([]Item, 0, capacity)}
	for _, v := range values {
		s.items = append(s.items, Item{ID: s.ids.take(), Value: v})
	}
	return s, nil
}

// resolveCapacity applies the default and checks the initial fill.
func resolveCapacity(capacity, def, fill int) (int, error) {
	switch {
	case capacity < 0:
		return 0, fmt.Errorf("%w: capacity %d", ErrOptionViolation, capacity)
	case capacity == 0:
		capacity = def
	}
	if fill > capacity {
		return 0, fmt.Errorf("%w: %d initial values exceed capacity %d", ErrFull, fill, capacity)
	}
	return capacity, nil
}

// Len returns the number of elements.
func (s *Stack) Len() int { return len(s.items) }

// Cap returns the capacity.
func (s *Stack) Cap() int {
	s.lazyInit()
	return s.capacity
}

// lazyInit gives a zero Stack the default capacity.
func (s *Stack) lazyInit() {
	if s.capacity == 0 {
		s.capacity = DefaultStackCapacity
	}
}

// Values returns the elements bottom first.
func (s *Stack) Values() []int { return values(s.items) }

func (s *Stack) snap(cursor int, detached *Item) Snapshot {
	return Snapshot{
		Structure: StructStack,
		Items:     cloneItems(s.items),
		Cursor:    cursor,
		Capacity:  s.capacity,
		Detached:  detached,
	}
}

func (s *Stack) finish(rec *step.Recorder[Snapshot]) (*Run, error) {
	return rec.Finish(step.KindDone, step.None, s.snap(0, nil),
		fmt.Sprintf("Stack holds %d of %d: %v", len(s.items), s.capacity, s.Values()))
}

// Push places v on top. A full stack fails with ErrFull.
func (s *Stack) Push(v int) (*Run, error) {
	s.lazyInit()
	if len(s.items) == s.capacity {
		return nil, fmt.Errorf("%w: stack holds %d of %d", ErrFull, len(s.items), s.capacity)
	}
	rec := step.NewRecorder[Snapshot](NameStack, 2)
	it := Item{ID: s.ids.take(), Value: v}
	s.items = append(s.items, it)
	top := len(s.items)
	rec.Record(step.KindPush, itemSubject(it, top), s.snap(top, nil),
		fmt.Sprintf("Push %d; top is now position %d", v, top))
	return s.finish(rec)
}

// Pop removes the top element. An empty stack fails with ErrEmpty.
func (s *Stack) Pop() (*Run, error) {
	s.lazyInit()
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: stack", ErrEmpty)
	}
	rec := step.NewRecorder[Snapshot](NameStack, 2)
	top := len(s.items)
	it := s.items[top-1]
	s.items = s.items[:top-1]
	rec.Record(step.KindPop, itemSubject(it, top), s.snap(0, &it),
		fmt.Sprintf("Pop %d from the top", it.Value))
	return s.finish(rec)
}

// Peek shows the top element without removing it.
func (s *Stack) Peek() (*Run, error) {
	s.lazyInit()
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: stack", ErrEmpty)
	}
	rec := step.NewRecorder[Snapshot](NameStack, 2)
	top := len(s.items)
	it := s.items[top-1]
	rec.Record(step.KindPeek, itemSubject(it, top), s.snap(top, nil),
		fmt.Sprintf("Top element is %d", it.Value))
	return s.finish(rec)
}
