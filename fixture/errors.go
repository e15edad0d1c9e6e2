// SPDX-License-Identifier: MIT
// Package: stepviz/fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Callers branch with errors.Is; constructors attach context with %w.
// Every sentinel also matches step.ErrInvalidInput.

package fixture

import "github.com/katalvlaran/stepviz/step"

// ErrTooFewVertices indicates a size parameter (n, vertex count) below the
// constructor's minimum.
var ErrTooFewVertices = step.Invalid("fixture: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = step.Invalid("fixture: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = step.Invalid("fixture: rng is required")

// ErrBadRange indicates an empty value range (lo > hi).
var ErrBadRange = step.Invalid("fixture: invalid value range")

// ErrEmptyGrid indicates a grid with no rows or no columns.
var ErrEmptyGrid = step.Invalid("fixture: grid must have at least one row and one column")

// ErrNonRectangular indicates grid rows of differing lengths.
var ErrNonRectangular = step.Invalid("fixture: grid rows must have the same length")
