// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Queue is a bounded FIFO queue of ints. The zero value is an empty queue
// with DefaultQueueCapacity.
type Queue struct {
	items    []Item // front first
	capacity int
	ids      ids
}

// NewQueue returns a queue with the given capacity holding values front
// first. A capacity of 0 means DefaultQueueCapacity.
func NewQueue(capacity int, values ...int) (*Queue, error) {
	capacity, err := resolveCapacity(capacity, DefaultQueueCapacity, len(values))
	if err != nil {
		return nil, err
	}
	q := &Queue{capacity: capacity, items: make([]Item, 0, capacity)}
	for _, v := range values {
		q.items = append(q.items, Item{ID: q.ids.take(), Value: v})
	}
	return q, nil
}

// Len returns the number of elements.
func (q *Queue) Len() int { return len(q.items) }

// Cap returns the capacity.
func (q *Queue) Cap() int {
	q.lazyInit()
	return q.capacity
}

// lazyInit gives a zero Queue the default capacity.
func (q *Queue) lazyInit() {
	if q.capacity == 0 {
		q.capacity = DefaultQueueCapacity
	}
}

// Values returns the elements front first.
func (q *Queue) Values() []int { return values(q.items) }

func (q *Queue) snap(cursor int, detached *Item) Snapshot {
	return Snapshot{
		Structure: StructQueue,
		Items:     cloneItems(q.items),
		Cursor:    cursor,
		Capacity:  q.capacity,
		Detached:  detached,
	}
}

func (q *Queue) finish(rec *step.Recorder[Snapshot]) (*Run, error) {
	return rec.Finish(step.KindDone, step.None, q.snap(0, nil),
		fmt.Sprintf("Queue holds %d of %d: %v", len(q.items), q.capacity, q.Values()))
}

// Enqueue appends v at the back. A full queue fails with ErrFull.
func (q *Queue) Enqueue(v int) (*Run, error) {
	q.lazyInit()
	if len(q.items) == q.capacity {
		return nil, fmt.Errorf("%w: queue holds %d of %d", ErrFull, len(q.items), q.capacity)
	}
	rec := step.NewRecorder[Snapshot](NameQueue, 2)
	it := Item{ID: q.ids.take(), Value: v}
	q.items = append(q.items, it)
	back := len(q.items)
	rec.Record(step.KindEnqueue, itemSubject(it, back), q.snap(back, nil),
		fmt.Sprintf("Enqueue %d at the back", v))
	return q.finish(rec)
}

// Dequeue removes the front element. An empty queue fails with ErrEmpty.
func (q *Queue) Dequeue() (*Run, error) {
	q.lazyInit()
	if len(q.items) == 0 {
		return nil, fmt.Errorf("%w: queue", ErrEmpty)
	}
	rec := step.NewRecorder[Snapshot](NameQueue, 2)
	it := q.items[0]
	q.items = append(q.items[:0:0], q.items[1:]...)
	rec.Record(step.KindDequeue, itemSubject(it, 1), q.snap(0, &it),
		fmt.Sprintf("Dequeue %d from the front", it.Value))
	return q.finish(rec)
}

// Peek shows the front element without removing it.
func (q *Queue) Peek() (*Run, error) {
	q.lazyInit()
	if len(q.items) == 0 {
		return nil, fmt.Errorf("%w: queue", ErrEmpty)
	}
	rec := step.NewRecorder[Snapshot](NameQueue, 2)
	it := q.items[0]
	rec.Record(step.KindPeek, itemSubject(it, 1), q.snap(1, nil),
		fmt.Sprintf("Front element is %d", it.Value))
	return q.finish(rec)
}
