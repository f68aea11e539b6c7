// SPDX-License-Identifier: MIT
// Package: epinet/ode
//
// dopri.go - Dormand–Prince 5(4) stepping with FSAL and adaptive control.
//
// Complexity:
//   - Time: O(S·d) for S attempted steps over a d-dimensional state (6 evaluations per step).
//   - Space: O(G·d) for G grid rows plus O(d) stage buffers.

package ode

import (
	"fmt"
	"math"
)

// Func evaluates dy/dt at (t, y). It must not modify y and must return a
// freshly allocated slice of len(y).
type Func func(t float64, y []float64) []float64

// Stats counts integrator work.
type Stats struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Evals    int `json:"evals"`
}

// Solution holds one state row per completed grid point.
type Solution struct {
	T     []float64
	Y     [][]float64
	Stats Stats
}

// Butcher tableau (Dormand & Prince 1980).
const (
	c2, c3, c4, c5 = 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9

	a21 = 1.0 / 5

	a31, a32 = 3.0 / 40, 9.0 / 40

	a41, a42, a43 = 44.0 / 45, -56.0 / 15, 32.0 / 9

	a51, a52, a53, a54 = 19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729

	a61, a62, a63, a64, a65 = 9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656

	// 5th-order weights; also the 7th stage row (FSAL)
	b1, b3, b4, b5, b6 = 35.0 / 384, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84

	// b - b̂ (5th minus embedded 4th order weights)
	e1, e3, e4, e5, e6, e7 = 71.0 / 57600, -71.0 / 16695, 71.0 / 1920, -17253.0 / 339200, 22.0 / 525, -1.0 / 40
)

// Step control.
const (
	safety    = 0.9
	minFactor = 0.2
	maxFactor = 5.0
	errOrder  = 5.0
	// steps within this many ulps of t are indistinguishable from zero
	ulpGuard = 16
)

// Solve integrates f from grid[0] with state y0 and returns the state at every
// grid point. Row 0 is a copy of y0.
//
// Errors:
//   - ErrBadGrid / ErrBadState / invalid Options: nothing is integrated.
//   - *IntegrationError wrapping ErrNonFinite, ErrStepTooSmall or ErrMaxSteps:
//     the returned Solution holds the rows completed before the failure.
func Solve(f Func, y0, grid []float64, opts Options) (*Solution, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(y0) == 0 {
		return nil, ErrBadState
	}
	if err := checkGrid(grid); err != nil {
		return nil, err
	}

	d := len(y0)
	sol := &Solution{
		T: make([]float64, 0, len(grid)),
		Y: make([][]float64, 0, len(grid)),
	}
	y := append([]float64(nil), y0...)
	t := grid[0]
	sol.T = append(sol.T, t)
	sol.Y = append(sol.Y, append([]float64(nil), y...))

	fail := func(step int, cause error) (*Solution, error) {
		return sol, &IntegrationError{Step: step, Time: t, State: append([]float64(nil), y...), Wrapped: cause}
	}
	if !finite(y) {
		return fail(0, ErrNonFinite)
	}
	if len(grid) == 1 {
		return sol, nil
	}

	s := &stepper{f: f, d: d}
	s.alloc()
	k1 := f(t, y)
	sol.Stats.Evals++
	if len(k1) != d {
		return nil, fmt.Errorf("ode: derivative length %d, state length %d: %w", len(k1), d, ErrBadState)
	}
	if !finite(k1) {
		return fail(0, ErrNonFinite)
	}

	h := opts.InitialStep
	if h == 0 {
		h = initialStep(grid)
	}
	attempts := 0

	for i := 1; i < len(grid); i++ {
		target := grid[i]
		for t < target {
			remaining := target - t
			if remaining <= ulpGuard*ulp(t) {
				t = target
				break
			}
			if attempts >= opts.MaxSteps {
				return fail(attempts, ErrMaxSteps)
			}
			attempts++

			hh := h
			if opts.MaxStep > 0 && hh > opts.MaxStep {
				hh = opts.MaxStep
			}
			clipped := false
			if hh >= remaining {
				hh = remaining
				clipped = true
			}
			if hh <= ulpGuard*ulp(t) {
				return fail(attempts, s.underflowCause())
			}

			errNorm := s.step(t, y, k1, hh, opts)
			sol.Stats.Evals += 6

			if math.IsNaN(errNorm) || math.IsInf(errNorm, 0) || !finite(s.ynew) {
				s.lastNonFinite = true
				sol.Stats.Rejected++
				h = hh * minFactor
				continue
			}
			s.lastNonFinite = false

			factor := maxFactor
			if errNorm > 0 {
				factor = math.Min(maxFactor, math.Max(minFactor, safety*math.Pow(errNorm, -1/errOrder)))
			}

			if errNorm > 1 {
				sol.Stats.Rejected++
				h = hh * math.Min(factor, 1)
				continue
			}

			sol.Stats.Accepted++
			if clipped {
				t = target
			} else {
				t += hh
			}
			copy(y, s.ynew)
			copy(k1, s.k7)

			next := hh * factor
			if clipped && next < h {
				// a short landing step says nothing about the natural step size
				next = h
			}
			h = next
		}
		sol.T = append(sol.T, target)
		sol.Y = append(sol.Y, append([]float64(nil), y...))
	}

	return sol, nil
}

// stepper owns the stage buffers of one integration.
type stepper struct {
	f Func
	d int

	tmp, ynew, k7      []float64
	k2, k3, k4, k5, k6 []float64
	lastNonFinite      bool
}

func (s *stepper) alloc() {
	s.tmp = make([]float64, s.d)
	s.ynew = make([]float64, s.d)
	s.k7 = make([]float64, s.d)
}

// underflowCause reports why the step collapsed.
func (s *stepper) underflowCause() error {
	if s.lastNonFinite {
		return ErrNonFinite
	}
	return ErrStepTooSmall
}

// step performs one trial step of size h from (t, y) with k1 = f(t, y).
// It fills s.ynew and s.k7 and returns the scaled RMS error estimate.
func (s *stepper) step(t float64, y, k1 []float64, h float64, opts Options) float64 {
	d := s.d
	tmp := s.tmp

	for i := 0; i < d; i++ {
		tmp[i] = y[i] + h*a21*k1[i]
	}
	s.k2 = s.eval(t+c2*h, tmp)
	if s.k2 == nil {
		return math.NaN()
	}

	for i := 0; i < d; i++ {
		tmp[i] = y[i] + h*(a31*k1[i]+a32*s.k2[i])
	}
	s.k3 = s.eval(t+c3*h, tmp)
	if s.k3 == nil {
		return math.NaN()
	}

	for i := 0; i < d; i++ {
		tmp[i] = y[i] + h*(a41*k1[i]+a42*s.k2[i]+a43*s.k3[i])
	}
	s.k4 = s.eval(t+c4*h, tmp)
	if s.k4 == nil {
		return math.NaN()
	}

	for i := 0; i < d; i++ {
		tmp[i] = y[i] + h*(a51*k1[i]+a52*s.k2[i]+a53*s.k3[i]+a54*s.k4[i])
	}
	s.k5 = s.eval(t+c5*h, tmp)
	if s.k5 == nil {
		return math.NaN()
	}

	for i := 0; i < d; i++ {
		tmp[i] = y[i] + h*(a61*k1[i]+a62*s.k2[i]+a63*s.k3[i]+a64*s.k4[i]+a65*s.k5[i])
	}
	k6 := s.eval(t+h, tmp)
	if k6 == nil {
		return math.NaN()
	}
	s.k6 = k6

	for i := 0; i < d; i++ {
		s.ynew[i] = y[i] + h*(b1*k1[i]+b3*s.k3[i]+b4*s.k4[i]+b5*s.k5[i]+b6*s.k6[i])
	}
	k7 := s.eval(t+h, s.ynew)
	if k7 == nil {
		return math.NaN()
	}
	copy(s.k7, k7)

	var sum float64
	for i := 0; i < d; i++ {
		errI := h * (e1*k1[i] + e3*s.k3[i] + e4*s.k4[i] + e5*s.k5[i] + e6*s.k6[i] + e7*s.k7[i])
		scale := opts.AbsTol + opts.RelTol*math.Max(math.Abs(y[i]), math.Abs(s.ynew[i]))
		r := errI / scale
		sum += r * r
	}

	return math.Sqrt(sum / float64(d))
}

// eval calls f and returns nil when the result is malformed or non-finite.
func (s *stepper) eval(t float64, y []float64) []float64 {
	dy := s.f(t, y)
	if len(dy) != s.d || !finite(dy) {
		return nil
	}
	return dy
}

func checkGrid(grid []float64) error {
	if len(grid) == 0 {
		return ErrBadGrid
	}
	for i, t := range grid {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("grid[%d]=%g: %w", i, t, ErrBadGrid)
		}
		if i > 0 && !(t > grid[i-1]) {
			return fmt.Errorf("grid[%d]=%g after %g: %w", i, t, grid[i-1], ErrBadGrid)
		}
	}

	return nil
}

// initialStep picks a conservative first step from the smallest grid spacing.
func initialStep(grid []float64) float64 {
	h := math.Inf(1)
	for i := 1; i < len(grid); i++ {
		h = math.Min(h, grid[i]-grid[i-1])
	}

	return h / 100
}

func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func ulp(t float64) float64 {
	a := math.Abs(t)
	if a < 1 {
		a = 1
	}
	return math.Nextafter(a, math.Inf(1)) - a
}
