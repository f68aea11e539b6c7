// SPDX-License-Identifier: MIT
// Package: epinet/compartment
//
// integrate.go - validated integration of a compartmental model.

package compartment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/epinet/ode"
	"github.com/katalvlaran/epinet/params"
)

// ErrNumericalFailure reports that the solver could not complete the grid.
// It wraps an *ode.IntegrationError carrying the last valid state and time.
var ErrNumericalFailure = errors.New("compartment: numerical failure")

// conservationTol is the relative tolerance on sum(initial) == N.
const conservationTol = 1e-9

// Trajectory is the solved state at every grid point.
type Trajectory struct {
	// Kind is the model the trajectory was inferred as (by state length).
	Kind Kind `json:"model"`
	// Columns names the compartments of each row.
	Columns []string `json:"columns"`
	// T is the time grid.
	T []float64 `json:"t"`
	// Y holds one state row per time in T.
	Y [][]float64 `json:"y"`
	// Stats counts solver work.
	Stats ode.Stats `json:"stats"`
}

// Len returns the number of rows.
func (tr *Trajectory) Len() int { return len(tr.T) }

// Column returns a copy of the named compartment over time, or nil.
func (tr *Trajectory) Column(name string) []float64 {
	idx := -1
	for i, c := range tr.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(tr.Y))
	for r, row := range tr.Y {
		out[r] = row[idx]
	}

	return out
}

// Integrate solves f from initial over grid with default solver options.
// See IntegrateWith.
func Integrate(f Derivative, initial, grid []float64, p params.ParameterSet) (*Trajectory, error) {
	return IntegrateWith(f, initial, grid, p, ode.DefaultOptions())
}

// IntegrateWith solves f from initial over grid.
//
// Validation (ErrInvalidConfig):
//   - p is valid;
//   - initial has 3 (SIR) or 4 (SEIR) nonnegative finite entries summing to p.N;
//   - f returns a slice of the same length;
//   - grid is non-empty and strictly increasing.
//
// On solver failure the rows up to the last completed grid point are
// returned together with an error wrapping ErrNumericalFailure and the
// *ode.IntegrationError. Values are never clamped.
func IntegrateWith(f Derivative, initial, grid []float64, p params.ParameterSet, opts ode.Options) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("compartment: nil derivative: %w", params.ErrInvalidConfig)
	}

	var kind Kind
	switch len(initial) {
	case KindSIR.Dim():
		kind = KindSIR
	case KindSEIR.Dim():
		kind = KindSEIR
	default:
		return nil, fmt.Errorf("compartment: initial state has %d compartments, want %d or %d: %w",
			len(initial), KindSIR.Dim(), KindSEIR.Dim(), params.ErrInvalidConfig)
	}
	if err := checkInitial(initial, float64(p.N)); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("compartment: %w: %w", params.ErrInvalidConfig, ode.ErrBadGrid)
	}
	if dy0 := f(initial, grid[0]); len(dy0) != len(initial) {
		return nil, fmt.Errorf("compartment: derivative has %d components, state %d: %w",
			len(dy0), len(initial), params.ErrInvalidConfig)
	}

	sol, err := ode.Solve(func(t float64, y []float64) []float64 { return f(y, t) }, initial, grid, opts)

	var ie *ode.IntegrationError
	switch {
	case err == nil:
	case errors.As(err, &ie):
		tr := newTrajectory(kind, sol)
		return tr, fmt.Errorf("%w: %w", ErrNumericalFailure, err)
	default:
		// grid and option validation happen before any step
		return nil, fmt.Errorf("compartment: %w: %w", params.ErrInvalidConfig, err)
	}

	return newTrajectory(kind, sol), nil
}

func newTrajectory(kind Kind, sol *ode.Solution) *Trajectory {
	return &Trajectory{
		Kind:    kind,
		Columns: kind.Columns(),
		T:       sol.T,
		Y:       sol.Y,
		Stats:   sol.Stats,
	}
}

func checkInitial(initial []float64, n float64) error {
	var sum float64
	for i, x := range initial {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return fmt.Errorf("compartment: initial[%d]=%g must be finite and ≥ 0: %w", i, x, params.ErrInvalidConfig)
		}
		sum += x
	}
	if math.Abs(sum-n) > conservationTol*n {
		return fmt.Errorf("compartment: initial state sums to %g, want N=%g: %w", sum, n, params.ErrInvalidConfig)
	}

	return nil
}
