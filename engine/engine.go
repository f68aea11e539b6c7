// SPDX-License-Identifier: MIT
// Package: epinet/engine
//
// engine.go - single compartmental and network runs.

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/compartment"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/dtw"
	"github.com/katalvlaran/epinet/network"
	"github.com/katalvlaran/epinet/ode"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/report"
	"github.com/katalvlaran/epinet/rng"
	"github.com/katalvlaran/epinet/telemetry"
)

// Engine runs scenarios described by a ParameterSet. It holds no per-run
// state and is safe for concurrent use.
type Engine struct {
	log       *zap.Logger
	rec       *telemetry.Recorder
	solver    ode.Options
	threshold int
	spreadHop int
	warp      dtw.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger shared by every component.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRecorder attaches Prometheus collectors.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(e *Engine) { e.rec = rec }
}

// WithSolverOptions overrides integrator tolerances and budgets.
func WithSolverOptions(o ode.Options) Option {
	return func(e *Engine) { e.solver = o }
}

// WithParallelThreshold sets the node count from which network steps are chunked.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) { e.threshold = n }
}

// WithSpreadHops bounds the neighbourhood search of NetworkResult.Spread.
// 0, the default, searches the whole component.
func WithSpreadHops(h int) Option {
	return func(e *Engine) { e.spreadHop = h }
}

// WithDTWOptions sets the warping options of Compare.
func WithDTWOptions(o dtw.Options) Option {
	return func(e *Engine) { e.warp = o }
}

// New returns an Engine with a no-op logger and default solver options.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:       zap.NewNop(),
		solver:    ode.DefaultOptions(),
		threshold: network.DefaultParallelThreshold,
		warp:      report.DefaultCompareOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CompartmentalResult is the output of a SIR or SEIR run.
type CompartmentalResult struct {
	Params       params.ParameterSet     `json:"params"`
	R0           float64                 `json:"r0"`
	LatentPeriod float64                 `json:"latent_period,omitempty"`
	Summary      report.Summary          `json:"summary"`
	Trajectory   *compartment.Trajectory `json:"trajectory"`
}

// SIR integrates the SIR model for p.
func (e *Engine) SIR(p params.ParameterSet) (*CompartmentalResult, error) {
	return e.Compartmental(compartment.KindSIR, p)
}

// SEIR integrates the SEIR model for p.
func (e *Engine) SEIR(p params.ParameterSet) (*CompartmentalResult, error) {
	return e.Compartmental(compartment.KindSEIR, p)
}

// Compartmental integrates kind over the reference grid of p. On
// compartment.ErrNumericalFailure the partial result is returned with the error.
func (e *Engine) Compartmental(kind compartment.Kind, p params.ParameterSet) (*CompartmentalResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	runner := compartment.NewRunner(
		compartment.WithLogger(e.log),
		compartment.WithRecorder(e.rec),
		compartment.WithSolverOptions(e.solver),
	)
	tr, runErr := runner.Run(kind, p)
	if tr == nil {
		return nil, runErr
	}

	res := &CompartmentalResult{Params: p, R0: report.R0(p), Trajectory: tr}
	if kind == compartment.KindSEIR {
		res.LatentPeriod = report.LatentPeriod(p)
	}
	if tr.Len() > 0 {
		s, err := report.Summarize(tr)
		if err != nil {
			return nil, errors.Join(runErr, err)
		}
		res.Summary = s
	}

	return res, runErr
}

// Graph builds the contact graph of p from its graph stream.
func (e *Engine) Graph(p params.ParameterSet) (*core.ContactGraph, error) {
	kind, err := builder.ParseGraphKind(p.GraphType)
	if err != nil {
		return nil, fmt.Errorf("engine: graph_type %q: %w: %w", p.GraphType, params.ErrInvalidConfig, err)
	}
	g, err := builder.Generate(kind, p.NetworkSize, builder.WithRand(rng.Derive(p.Seed, rng.StreamGraph)))
	if err != nil {
		if errors.Is(err, builder.ErrTooFewVertices) || errors.Is(err, builder.ErrInvalidProbability) {
			return nil, fmt.Errorf("engine: %w: %w", params.ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.rec.ObserveGraph(kind.String(), g.EdgeCount())

	return g, nil
}

// NetworkResult is the output of one network run.
type NetworkResult struct {
	RunID       uuid.UUID            `json:"run_id"`
	Seed        int64                `json:"seed"`
	GraphType   string               `json:"graph_type"`
	Graph       core.GraphStats      `json:"graph"`
	PatientZero int                  `json:"patient_zero"`
	Reach       int                  `json:"reach"`
	Spread      report.Spread        `json:"spread"`
	R0          float64              `json:"r0"`
	Final       report.FinalState    `json:"final"`
	Curve       report.EpidemicCurve `json:"curve"`
	History     *network.History     `json:"-"`
}

// Network generates the contact graph of p and runs the contagion process on it.
// On cancellation the partial run is discarded and ctx.Err() returned.
func (e *Engine) Network(ctx context.Context, p params.ParameterSet) (*NetworkResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	g, err := e.Graph(p)
	if err != nil {
		return nil, err
	}
	sim, err := network.NewSimulator(g, p,
		network.WithLogger(e.log.With(zap.String("graph_type", p.GraphType))),
		network.WithRecorder(e.rec),
		network.WithParallelThreshold(e.threshold),
	)
	if err != nil {
		return nil, err
	}
	run, err := sim.RunContext(ctx, rng.Derive(p.Seed, rng.StreamContagion))
	if err != nil {
		return nil, err
	}

	res := &NetworkResult{
		RunID:       run.ID,
		Seed:        p.Seed,
		GraphType:   p.GraphType,
		Graph:       g.Stats(),
		PatientZero: run.PatientZero,
		R0:          report.R0(p),
		History:     run.History,
	}
	if res.Reach, err = report.Reach(g, run.PatientZero); err != nil {
		return nil, err
	}
	if res.Spread, err = report.SpreadOf(g, run.PatientZero, run.History.Last(), e.spreadHop); err != nil {
		return nil, err
	}
	if res.Final, err = report.Final(run.History); err != nil {
		return nil, err
	}
	if res.Curve, err = report.Curve(run.History); err != nil {
		return nil, err
	}

	e.log.Debug("network result",
		zap.String("run_id", run.ID.String()),
		zap.Int("edges", res.Graph.Edges),
		zap.Int("reach", res.Reach),
		zap.Int("infected_depth", res.Spread.InfectedDepth),
		zap.Float64("attack_rate", res.Final.AttackRate),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// ComparisonResult relates a SIR run to a network run with the same parameters.
type ComparisonResult struct {
	Compartmental *CompartmentalResult `json:"compartmental"`
	Network       *NetworkResult       `json:"network"`
	Comparison    report.Comparison    `json:"comparison"`
}

// Compare runs SIR and a network simulation for p and measures the distance
// between their normalised infected curves.
func (e *Engine) Compare(ctx context.Context, p params.ParameterSet) (*ComparisonResult, error) {
	cr, err := e.SIR(p)
	if err != nil {
		return nil, err
	}
	nr, err := e.Network(ctx, p)
	if err != nil {
		return nil, err
	}
	c, err := report.CompareWith(cr.Trajectory, nr.Curve, p.N, p.NetworkSize, e.warp)
	if err != nil {
		return nil, err
	}
	e.log.Info("model comparison",
		zap.Float64("dtw_distance", c.Distance),
		zap.Float64("compartmental_peak", c.CompartmentalPeak),
		zap.Float64("network_peak", c.NetworkPeak),
	)

	return &ComparisonResult{Compartmental: cr, Network: nr, Comparison: c}, nil
}
