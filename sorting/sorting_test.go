// SPDX-License-Identifier: MIT

package sorting_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
)

type sortFn func([]int, ...sorting.Option) (*sorting.Run, error)

var generators = map[string]sortFn{
	sorting.NameSelection: sorting.Selection,
	sorting.NameInsertion: sorting.Insertion,
	sorting.NameBubble:    sorting.Bubble,
	sorting.NameCounting:  sorting.Counting,
}

var inputs = [][]int{
	nil,
	{},
	{7},
	{2, 1},
	{5, 2, 4, 1, 3},
	{3, 3, 1, 3, 0},
	{1, 2, 3, 4, 5, 6},
	{9, 8, 7, 6, 5, 4, 3},
	{4, 1, 4, 1, 4, 1, 0, 12},
}

// SortingSuite checks the shared contract of every sort generator.
type SortingSuite struct {
	suite.Suite
}

// TestTerminalIsSorted verifies the terminal snapshot equals the sorted input.
func (s *SortingSuite) TestTerminalIsSorted() {
	for name, gen := range generators {
		for _, in := range inputs {
			for _, order := range []sorting.Order{sorting.Ascending, sorting.Descending} {
				run, err := gen(in, sorting.WithOrder(order))
				require.NoError(s.T(), err, name)
				require.NoError(s.T(), run.Validate(), name)

				want := append([]int{}, in...)
				if order == sorting.Ascending {
					sort.Ints(want)
				} else {
					sort.Sort(sort.Reverse(sort.IntSlice(want)))
				}
				require.Equal(s.T(), want, sorting.Result(run), "%s %v %s", name, in, order)
				require.Equal(s.T(), name, run.Name())
				require.Len(s.T(), run.Last().Snapshot.Sorted, len(in))
			}
		}
	}
}

// TestDeterminism verifies identical input yields an identical Run.
func (s *SortingSuite) TestDeterminism() {
	for name, gen := range generators {
		a, err := gen([]int{4, 1, 3, 1, 2})
		require.NoError(s.T(), err)
		b, err := gen([]int{4, 1, 3, 1, 2})
		require.NoError(s.T(), err)
		require.Equal(s.T(), a, b, name)
	}
}

// TestInputNotMutated verifies generators work on a copy.
func (s *SortingSuite) TestInputNotMutated() {
	for name, gen := range generators {
		in := []int{3, 1, 2}
		_, err := gen(in)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{3, 1, 2}, in, name)
	}
}

// TestBadOrder verifies an unknown Order is rejected before any Run exists.
func (s *SortingSuite) TestBadOrder() {
	for name, gen := range generators {
		run, err := gen([]int{1}, sorting.WithOrder(sorting.Order(7)))
		require.Nil(s.T(), run, name)
		require.ErrorIs(s.T(), err, sorting.ErrOptionViolation)
		require.ErrorIs(s.T(), err, step.ErrInvalidInput)
	}
}

// TestCanceled verifies a cancelled context aborts generation.
func (s *SortingSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, gen := range generators {
		run, err := gen([]int{3, 2, 1}, sorting.WithContext(ctx))
		require.Nil(s.T(), run, name)
		require.ErrorIs(s.T(), err, context.Canceled, name)
	}
}

func TestSortingSuite(t *testing.T) {
	suite.Run(t, new(SortingSuite))
}

// TestSelection_Scenario covers [5,2,4,1,3] ascending.
func TestSelection_Scenario(t *testing.T) {
	run, err := sorting.Selection([]int{5, 2, 4, 1, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, sorting.Result(run))
	require.Equal(t, 4, run.Count(step.KindBoundary))
	// n(n-1)/2 comparisons
	require.Equal(t, 10, run.Count(step.KindCompare))

	first, _ := run.At(0)
	require.Equal(t, step.KindInit, first.Kind)
	require.Equal(t, []int{5, 2, 4, 1, 3}, first.Snapshot.Values)
}

// TestSelection_FirstSeenTie verifies equal minima keep the first index.
func TestSelection_FirstSeenTie(t *testing.T) {
	run, err := sorting.Selection([]int{2, 1, 1})
	require.NoError(t, err)

	swaps := run.Filter(step.KindSwap)
	require.NotEmpty(t, swaps)
	require.Equal(t, []int{0, 1}, swaps[0].Subject.Indices)
}

// TestSelection_NoSwapWhenInPlace verifies sorted input records no swaps.
func TestSelection_NoSwapWhenInPlace(t *testing.T) {
	run, err := sorting.Selection([]int{1, 2, 3})
	require.NoError(t, err)
	require.Zero(t, run.Count(step.KindSwap))
	require.Equal(t, 2, run.Count(step.KindBoundary))
}

// TestInsertion_Shifts verifies shift and insert bookkeeping.
func TestInsertion_Shifts(t *testing.T) {
	run, err := sorting.Insertion([]int{3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 3, run.Count(step.KindShift))
	require.Equal(t, 2, run.Count(step.KindInsert))
	require.Equal(t, 2, run.Count(step.KindBoundary))

	for _, st := range run.Filter(step.KindShift) {
		require.NotNil(t, st.Snapshot.Held)
	}
}

// TestBubble_Boundaries verifies boundaries grow from the right.
func TestBubble_Boundaries(t *testing.T) {
	run, err := sorting.Bubble([]int{4, 3, 2, 1})
	require.NoError(t, err)

	var got []int
	for _, st := range run.Filter(step.KindBoundary) {
		got = append(got, st.Subject.Indices[0])
	}
	require.Equal(t, []int{3, 2, 1}, got)
	require.Equal(t, 6, run.Count(step.KindSwap))
}

// TestCounting_Range verifies out-of-range values fail fast.
func TestCounting_Range(t *testing.T) {
	for _, in := range [][]int{{1, -1}, {sorting.MaxCountingValue + 1}} {
		run, err := sorting.Counting(in)
		require.Nil(t, run)
		require.ErrorIs(t, err, sorting.ErrValueOutOfRange)
		require.ErrorIs(t, err, step.ErrInvalidInput)
	}
}

// TestCounting_Buckets verifies the count phase fills and the place phase drains.
func TestCounting_Buckets(t *testing.T) {
	run, err := sorting.Counting([]int{2, 0, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 4, run.Count(step.KindCount))
	require.Equal(t, 4, run.Count(step.KindPlace))

	counts := run.Filter(step.KindCount)
	require.Equal(t, []int{1, 1, 2}, counts[len(counts)-1].Snapshot.Counts)
	require.Equal(t, []int{0, 0, 0}, run.Last().Snapshot.Counts)
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]sorting.Order{
		"": sorting.Ascending, "asc": sorting.Ascending, "ascending": sorting.Ascending,
		"desc": sorting.Descending, "descending": sorting.Descending,
	} {
		got, err := sorting.ParseOrder(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := sorting.ParseOrder("sideways")
	require.ErrorIs(t, err, sorting.ErrOptionViolation)
}

func TestIsSorted(t *testing.T) {
	require.True(t, sorting.IsSorted(nil, sorting.Ascending))
	require.True(t, sorting.IsSorted([]int{1, 1, 2}, sorting.Ascending))
	require.False(t, sorting.IsSorted([]int{1, 1, 2}, sorting.Descending))
	require.True(t, sorting.IsSorted([]int{3, 3, 2}, sorting.Descending))
}
