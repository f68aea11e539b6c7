// SPDX-License-Identifier: MIT
// Package: epinet/ode
//
// errors.go - sentinel errors and the IntegrationError context wrapper.

package ode

import (
	"errors"
	"fmt"
)

// Sentinel errors for integration.
var (
	// ErrBadGrid indicates an empty or non-increasing time grid.
	ErrBadGrid = errors.New("ode: time grid must be non-empty and strictly increasing")

	// ErrBadState indicates an empty initial state.
	ErrBadState = errors.New("ode: initial state must be non-empty")

	// ErrNonFinite indicates a NaN or Inf appeared in the state or derivative.
	ErrNonFinite = errors.New("ode: non-finite value (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive step underflowed.
	ErrStepTooSmall = errors.New("ode: adaptive step below minimum")

	// ErrMaxSteps indicates the step budget was exhausted.
	ErrMaxSteps = errors.New("ode: step budget exhausted")
)

// IntegrationError carries the last accepted state of a failed integration.
type IntegrationError struct {
	// Step is the number of attempted steps at failure.
	Step int
	// Time is the time of the last accepted state.
	Time float64
	// State is a copy of the last accepted state.
	State []float64
	// Wrapped is one of the package sentinels.
	Wrapped error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%v (step %d, t=%g)", e.Wrapped, e.Step, e.Time)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
