// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method name.
//
// Priority when several validations fail:
//   • ErrTooFewVertices       - size/domain checks first (n, k, m).
//   • ErrInvalidProbability   - then probability ranges.
//   • ErrNeedRandSource       - then RNG presence for stochastic builders.
//   • ErrConstructFailed      - only after the topology itself cannot be completed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, k, m) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates a lattice degree that is odd or non-positive.
var ErrInvalidDegree = errors.New("builder: invalid lattice degree")

// ErrUnknownGraphKind indicates a topology name ParseGraphKind does not know.
var ErrUnknownGraphKind = errors.New("builder: unknown graph kind")

// ErrConstructFailed indicates that a constructor could not complete the
// topology without breaking simplicity (no loops / no multi-edges), or that
// BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
