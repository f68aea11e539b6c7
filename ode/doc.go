// Package ode integrates systems of ordinary differential equations
// dy/dt = f(t, y) over a caller-supplied time grid.
//
// The integrator is an embedded Dormand–Prince 5(4) Runge–Kutta pair with
// adaptive step-size control:
//
//   - local error is measured as an RMS norm scaled by AbsTol + RelTol·|y|;
//   - steps are clipped so every grid point is hit exactly, so no
//     interpolation is needed;
//   - linear invariants of f (such as a conserved total) are preserved by
//     every step up to rounding.
//
// # Example
//
//	f := func(t float64, y []float64) []float64 { return []float64{-y[0]} }
//	sol, err := ode.Solve(f, []float64{1}, []float64{0, 1, 2}, ode.DefaultOptions())
//
// # Failure
//
// Solve never clamps. On failure it returns the rows completed so far
// together with an *IntegrationError wrapping ErrNonFinite, ErrStepTooSmall
// or ErrMaxSteps. Both are checked with errors.Is / errors.As.
package ode
