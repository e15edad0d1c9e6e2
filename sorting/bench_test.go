// SPDX-License-Identifier: MIT

package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepviz/sorting"
)

// BenchmarkSelection measures step recording for a 200-element array.
func BenchmarkSelection(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := make([]int, 200)
	for i := range in {
		in[i] = rng.Intn(1000)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Selection(in)
	}
}

// BenchmarkCounting measures counting sort on 1000 small values.
func BenchmarkCounting(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := make([]int, 1000)
	for i := range in {
		in[i] = rng.Intn(sorting.MaxCountingValue + 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Counting(in)
	}
}
