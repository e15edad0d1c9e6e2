// SPDX-License-Identifier: MIT

package sorting

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Algorithm names as recorded in Run.Name.
const (
	NameSelection = "selection-sort"
	NameInsertion = "insertion-sort"
	NameBubble    = "bubble-sort"
	NameCounting  = "counting-sort"
)

// MaxCountingValue bounds the values Counting accepts, keeping the bucket
// array small enough to display.
const MaxCountingValue = 99

// Sentinel errors. Both match step.ErrInvalidInput.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = step.Invalid("sorting: invalid option supplied")

	// ErrValueOutOfRange is returned by Counting for negative or oversized values.
	ErrValueOutOfRange = step.Invalid("sorting: value out of counting range")
)

// Order is the requested sort direction.
type Order int

const (
	// Ascending sorts smallest first.
	Ascending Order = iota
	// Descending sorts largest first.
	Descending
)

// String returns "asc" or "desc".
func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// ParseOrder maps "asc"/"ascending"/"" and "desc"/"descending" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
}

// before reports whether a must come strictly before b under o.
func (o Order) before(a, b int) bool {
	if o == Descending {
		return a > b
	}
	return a < b
}

// Option configures a sort generator.
type Option func(*Options)

// Options holds the resolved generator settings.
type Options struct {
	// Ctx allows cancellation of long generations.
	Ctx context.Context

	// Order is the requested direction.
	Order Order

	err error
}

// DefaultOptions returns Background context and Ascending order.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Order: Ascending}
}

// WithContext sets a context checked once per outer loop iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder sets the sort direction.
func WithOrder(order Order) Option {
	return func(o *Options) {
		if order != Ascending && order != Descending {
			o.err = fmt.Errorf("%w: order %d", ErrOptionViolation, int(order))
			return
		}
		o.Order = order
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Snapshot is the renderable state of a sort at one instant.
type Snapshot struct {
	// Values is the array as it stands at this instant.
	Values []int `json:"values" yaml:"values"`

	// Sorted lists the indices of the sorted region, ascending.
	Sorted []int `json:"sorted" yaml:"sorted"`

	// Candidate is the current minimum (maximum when descending) during
	// selection sort, or -1.
	Candidate int `json:"candidate" yaml:"candidate"`

	// Held is the key being inserted by insertion sort, nil otherwise.
	Held *int `json:"held,omitempty" yaml:"held,omitempty"`

	// Counts is the bucket array of counting sort, nil otherwise.
	Counts []int `json:"counts,omitempty" yaml:"counts,omitempty"`
}

// Run is the Run type produced by every generator in this package.
type Run = step.Run[Snapshot]

// IsSorted reports whether values is sorted under order (non-strictly).
func IsSorted(values []int, order Order) bool {
	for i := 1; i < len(values); i++ {
		if order.before(values[i], values[i-1]) {
			return false
		}
	}
	return true
}

// Result returns the terminal array of a sort Run.
func Result(run *Run) []int {
	return step.CloneInts(run.Last().Snapshot.Values)
}

// snap builds an independent Snapshot from the working state.
func snap(values []int, sorted []int, candidate int) Snapshot {
	return Snapshot{
		Values:    step.CloneInts(values),
		Sorted:    step.CloneInts(sorted),
		Candidate: candidate,
	}
}

// prefix returns [0, 1, ..., n-1].
func prefix(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
