// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: <detail>: %w").
//   • Constructors never panic; option constructors panic on meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates a negative average degree or one that cannot be
// realized on the requested vertex count.
var ErrInvalidDegree = errors.New("builder: average degree out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not produce the requested
// topology (nil constructor, bad draft edge, no component large enough).
var ErrConstructFailed = errors.New("builder: construction failed")
