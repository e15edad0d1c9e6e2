// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

const none = -1

type cell struct {
	value int
	next  int
}

// List is a singly linked list of ints. Cells live in a map keyed by ID and
// are chained through next. The zero value is an empty list ready to use.
type List struct {
	cells map[int]*cell
	head  int
	size  int
	ids   ids
}

// NewList returns a list holding values in order.
func NewList(values ...int) *List {
	l := &List{cells: make(map[int]*cell, len(values)), head: none}
	tail := none
	for _, v := range values {
		id := l.ids.take()
		l.cells[id] = &cell{value: v, next: none}
		if tail == none {
			l.head = id
		} else {
			l.cells[tail].next = id
		}
		tail = id
		l.size++
	}
	return l
}

// lazyInit sets up a zero List. A List with cells is already initialised.
func (l *List) lazyInit() {
	if l.cells == nil {
		l.cells = make(map[int]*cell)
		l.head = none
	}
}

// Len returns the number of elements.
func (l *List) Len() int { return l.size }

// Values returns the elements head first.
func (l *List) Values() []int { return values(l.items()) }

func (l *List) items() []Item {
	l.lazyInit()
	out := make([]Item, 0, l.size)
	for id := l.head; id != none; id = l.cells[id].next {
		out = append(out, Item{ID: id, Value: l.cells[id].value})
	}
	return out
}

// nodeAt returns the ID at 1-based position pos, which must be valid.
func (l *List) nodeAt(pos int) int {
	id := l.head
	for i := 1; i < pos; i++ {
		id = l.cells[id].next
	}
	return id
}

func (l *List) snap(cursor int, detached *Item) Snapshot {
	return Snapshot{Structure: StructList, Items: l.items(), Cursor: cursor, Detached: detached}
}

// walk records a traverse step for positions 1..upto.
func (l *List) walk(rec *step.Recorder[Snapshot], upto int) {
	id := l.head
	for pos := 1; pos <= upto; pos++ {
		it := Item{ID: id, Value: l.cells[id].value}
		rec.Record(step.KindTraverse, itemSubject(it, pos), l.snap(pos, nil),
			fmt.Sprintf("Position %d holds %d", pos, it.Value))
		id = l.cells[id].next
	}
}

func (l *List) finish(rec *step.Recorder[Snapshot]) (*Run, error) {
	return rec.Finish(step.KindDone, step.None, l.snap(0, nil),
		fmt.Sprintf("List: %v", l.Values()))
}

// InsertFront links v in as the new head.
func (l *List) InsertFront(v int) (*Run, error) {
	return l.InsertAt(1, v)
}

// InsertBack walks to the tail and links v after it.
func (l *List) InsertBack(v int) (*Run, error) {
	return l.InsertAt(l.size+1, v)
}

// InsertAt links v so that it ends at 1-based position pos.
func (l *List) InsertAt(pos, v int) (*Run, error) {
	if pos < 1 || pos > l.size+1 {
		return nil, fmt.Errorf("%w: insert at %d, valid 1..%d", ErrPositionOutOfRange, pos, l.size+1)
	}
	l.lazyInit()
	rec := step.NewRecorder[Snapshot](NameList, pos+1)

	id := l.ids.take()
	c := &cell{value: v, next: none}
	item := Item{ID: id, Value: v}

	if pos == 1 {
		c.next = l.head
		l.cells[id] = c
		l.head = id
		l.size++
		note := fmt.Sprintf("List is empty: %d becomes the head", v)
		if c.next != none {
			note = fmt.Sprintf("%d points to old head %d and becomes the head", v, l.cells[c.next].value)
		}
		rec.Record(step.KindLink, itemSubject(item, 1), l.snap(1, nil), note)
		return l.finish(rec)
	}

	l.walk(rec, pos-1)
	prev := l.nodeAt(pos - 1)
	c.next = l.cells[prev].next
	l.cells[id] = c
	l.cells[prev].next = id
	l.size++

	note := fmt.Sprintf("%d now points to %d, which is the new tail", l.cells[prev].value, v)
	if c.next != none {
		note = fmt.Sprintf("%d now points to %d, and %d points to %d", l.cells[prev].value, v, v, l.cells[c.next].value)
	}
	rec.Record(step.KindLink, itemSubject(item, pos), l.snap(pos, nil), note)
	return l.finish(rec)
}

// DeleteFront unlinks the head.
func (l *List) DeleteFront() (*Run, error) {
	if l.size == 0 {
		return nil, fmt.Errorf("%w: delete from empty list", ErrEmpty)
	}
	return l.DeleteAt(1)
}

// DeleteBack walks to the node before the tail and unlinks the tail.
func (l *List) DeleteBack() (*Run, error) {
	if l.size == 0 {
		return nil, fmt.Errorf("%w: delete from empty list", ErrEmpty)
	}
	return l.DeleteAt(l.size)
}

// DeleteAt unlinks the element at 1-based position pos.
func (l *List) DeleteAt(pos int) (*Run, error) {
	if pos < 1 || pos > l.size {
		return nil, fmt.Errorf("%w: delete at %d, valid 1..%d", ErrPositionOutOfRange, pos, l.size)
	}
	rec := step.NewRecorder[Snapshot](NameList, pos+1)

	var gone int
	if pos == 1 {
		gone = l.head
		l.head = l.cells[gone].next
	} else {
		l.walk(rec, pos-1)
		prev := l.nodeAt(pos - 1)
		gone = l.cells[prev].next
		l.cells[prev].next = l.cells[gone].next
	}
	item := Item{ID: gone, Value: l.cells[gone].value}
	delete(l.cells, gone)
	l.size--

	note := fmt.Sprintf("Unlink %d from position %d", item.Value, pos)
	if pos == 1 {
		note = fmt.Sprintf("Unlink head %d", item.Value)
	}
	rec.Record(step.KindUnlink, itemSubject(item, pos), l.snap(0, &item), note)
	return l.finish(rec)
}

// Find walks the list looking for v and reports its 1-based position.
func (l *List) Find(v int) (*Run, error) {
	l.lazyInit()
	rec := step.NewRecorder[Snapshot](NameList, l.size+2)
	pos := 1
	for id := l.head; id != none; id = l.cells[id].next {
		it := Item{ID: id, Value: l.cells[id].value}
		if it.Value == v {
			rec.Record(step.KindFound, itemSubject(it, pos), l.snap(pos, nil),
				fmt.Sprintf("Found %d at position %d", v, pos))
			return l.finish(rec)
		}
		rec.Record(step.KindTraverse, itemSubject(it, pos), l.snap(pos, nil),
			fmt.Sprintf("Position %d holds %d, not %d", pos, it.Value, v))
		pos++
	}
	rec.Record(step.KindNotFound, step.OnValue(v), l.snap(0, nil),
		fmt.Sprintf("%d is not in the list", v))
	return l.finish(rec)
}

// FoundAt returns the 1-based position reported by a Find Run.
func FoundAt(run *Run) (int, bool) {
	found := run.Filter(step.KindFound)
	if len(found) == 0 {
		return 0, false
	}
	return found[0].Subject.Indices[0], true
}
