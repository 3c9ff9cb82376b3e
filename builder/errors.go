// SPDX-License-Identifier: MIT
// Package: ktruss/builder
//
// errors.go — sentinel errors for the builder package.
package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the allowed minimum
// for the requested constructor (Path needs 1, Cycle needs 3, etc.).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value lies outside
// the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// with a nil *rand.Rand while 0 < p < 1 requires true sampling.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
