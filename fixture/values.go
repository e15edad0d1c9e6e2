// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"sort"
)

const (
	methodRandomValues = "RandomValues"
	methodSortedValues = "SortedValues"
	minValues          = 1
)

// RandomValues draws n integers uniformly from [lo, hi].
// Requires n ≥ 1, lo ≤ hi and an RNG.
func RandomValues(n, lo, hi int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := checkValues(methodRandomValues, n, lo, hi, cfg); err != nil {
		return nil, err
	}
	span := hi - lo + 1
	out := make([]int, n)
	for i := range out {
		out[i] = lo + cfg.rng.Intn(span)
	}
	return out, nil
}

// SortedValues is RandomValues sorted ascending, the input binary search
// needs.
func SortedValues(n, lo, hi int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := checkValues(methodSortedValues, n, lo, hi, cfg); err != nil {
		return nil, err
	}
	out, err := RandomValues(n, lo, hi, WithRand(cfg.rng))
	if err != nil {
		return nil, err
	}
	sort.Ints(out)
	return out, nil
}

func checkValues(method string, n, lo, hi int, cfg config) error {
	if n < minValues {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minValues, ErrTooFewVertices)
	}
	if lo > hi {
		return fmt.Errorf("%s: lo=%d > hi=%d: %w", method, lo, hi, ErrBadRange)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}
