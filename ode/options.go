// SPDX-License-Identifier: MIT
// Package: epinet/ode
//
// options.go - integrator tolerances and budgets.

package ode

import "fmt"

// Default tolerances and budgets.
const (
	DefaultRelTol   = 1e-8
	DefaultAbsTol   = 1e-8
	DefaultMaxSteps = 100000
)

// Options configures Solve.
type Options struct {
	// RelTol is the relative local error tolerance (> 0).
	RelTol float64
	// AbsTol is the absolute local error tolerance (> 0).
	AbsTol float64
	// InitialStep is the first trial step; 0 picks one from the grid spacing.
	InitialStep float64
	// MaxStep bounds every step; 0 means unbounded.
	MaxStep float64
	// MaxSteps caps accepted plus rejected steps over the whole grid.
	MaxSteps int
}

// DefaultOptions returns the default tolerances and step budget.
func DefaultOptions() Options {
	return Options{
		RelTol:   DefaultRelTol,
		AbsTol:   DefaultAbsTol,
		MaxSteps: DefaultMaxSteps,
	}
}

// Validate reports a non-positive tolerance or budget, or a negative step bound.
func (o Options) Validate() error {
	if !(o.RelTol > 0) || !(o.AbsTol > 0) {
		return fmt.Errorf("ode: tolerances must be > 0 (rtol=%g, atol=%g)", o.RelTol, o.AbsTol)
	}
	if o.MaxSteps <= 0 {
		return fmt.Errorf("ode: MaxSteps must be > 0, got %d", o.MaxSteps)
	}
	if o.InitialStep < 0 || o.MaxStep < 0 {
		return fmt.Errorf("ode: step bounds must be ≥ 0 (h0=%g, hmax=%g)", o.InitialStep, o.MaxStep)
	}

	return nil
}
