// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEndpoint indicates WithEndpoints ids outside 1..n or equal to each other.
var ErrBadEndpoint = errors.New("builder: start/finish outside the generated range")

// ErrConstructFailed indicates a nil constructor or a core error during construction.
var ErrConstructFailed = errors.New("builder: construction failed")
