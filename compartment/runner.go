// SPDX-License-Identifier: MIT
// Package: epinet/compartment
//
// runner.go - end-to-end SIR / SEIR runs with logging and metrics.

package compartment

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/epinet/ode"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/telemetry"
)

// Runner integrates a model from the reference initial condition over the
// reference time grid of a ParameterSet.
type Runner struct {
	log  *zap.Logger
	rec  *telemetry.Recorder
	opts ode.Options
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRecorder attaches Prometheus collectors.
func WithRecorder(rec *telemetry.Recorder) RunnerOption {
	return func(r *Runner) { r.rec = rec }
}

// WithSolverOptions overrides the integrator tolerances and budgets.
func WithSolverOptions(o ode.Options) RunnerOption {
	return func(r *Runner) { r.opts = o }
}

// NewRunner returns a Runner with a no-op logger, no recorder and default
// solver options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zap.NewNop(), opts: ode.DefaultOptions()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run integrates kind with InitialState(kind, p.N) over TimeGrid(p.Days).
// Errors are those of IntegrateWith; a partial trajectory accompanies
// ErrNumericalFailure.
func (r *Runner) Run(kind Kind, p params.ParameterSet) (*Trajectory, error) {
	start := time.Now()
	mode := kind.String()

	tr, err := IntegrateWith(kind.Derivative(p), InitialState(kind, p.N), TimeGrid(p.Days), p, r.opts)
	elapsed := time.Since(start)
	r.rec.ObserveRun(mode, elapsed, err)

	if tr != nil {
		r.rec.ObserveIntegration(mode, tr.Stats, err != nil)
	}
	if err != nil {
		fields := []zap.Field{zap.String("mode", mode), zap.Duration("elapsed", elapsed), zap.Error(err)}
		var ie *ode.IntegrationError
		if errors.As(err, &ie) {
			fields = append(fields, zap.Int("step", ie.Step), zap.Float64("t", ie.Time))
		}
		r.log.Warn("compartmental run failed", fields...)
		return tr, err
	}

	r.log.Info("compartmental run complete",
		zap.String("mode", mode),
		zap.Int("n", p.N),
		zap.Int("days", p.Days),
		zap.Int("accepted", tr.Stats.Accepted),
		zap.Int("rejected", tr.Stats.Rejected),
		zap.Duration("elapsed", elapsed),
	)

	return tr, nil
}
