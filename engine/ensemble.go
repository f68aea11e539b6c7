// SPDX-License-Identifier: MIT
// Package: epinet/engine
//
// ensemble.go - independent network runs executed concurrently.

package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/rng"
)

const modeEnsemble = "ensemble"

// EnsembleResult aggregates the members of an ensemble.
type EnsembleResult struct {
	Seed int64 `json:"seed"`
	// Runs is ordered by member index.
	Runs []*NetworkResult `json:"runs"`

	MeanAttackRate    float64 `json:"mean_attack_rate"`
	MinAttackRate     float64 `json:"min_attack_rate"`
	MaxAttackRate     float64 `json:"max_attack_rate"`
	MeanFinalInfected float64 `json:"mean_final_infected"`
	// MeanPeakInfected is the mean of each member's largest infected count.
	MeanPeakInfected float64 `json:"mean_peak_infected"`
}

// Ensemble executes runs independent network simulations of p, at most
// GOMAXPROCS at a time. Member i uses seed rng.MemberSeed(p.Seed, i) for both
// its graph and its contagion process, so the result equals that of running
// the members one after another. The first failure cancels the rest.
func (e *Engine) Ensemble(ctx context.Context, p params.ParameterSet, runs int) (*EnsembleResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if runs < 1 {
		return nil, fmt.Errorf("engine: ensemble runs=%d must be positive: %w", runs, params.ErrInvalidConfig)
	}
	start := time.Now()

	results := make([]*NetworkResult, runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < runs; i++ {
		i := i
		member := p
		member.Seed = rng.MemberSeed(p.Seed, i)
		g.Go(func() error {
			done := e.rec.EnsembleRunStarted()
			defer done()

			res, err := e.Network(gctx, member)
			if err != nil {
				return fmt.Errorf("engine: ensemble member %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	e.rec.ObserveRun(modeEnsemble, elapsed, err)
	if err != nil {
		e.log.Warn("ensemble failed", zap.Int("runs", runs), zap.Error(err))
		return nil, err
	}

	res := aggregate(p.Seed, results)
	e.log.Info("ensemble complete",
		zap.Int("runs", runs),
		zap.String("graph_type", p.GraphType),
		zap.Float64("mean_attack_rate", res.MeanAttackRate),
		zap.Duration("elapsed", elapsed),
	)

	return res, nil
}

func aggregate(seed int64, runs []*NetworkResult) *EnsembleResult {
	res := &EnsembleResult{Seed: seed, Runs: runs}
	for i, r := range runs {
		ar := r.Final.AttackRate
		if i == 0 || ar < res.MinAttackRate {
			res.MinAttackRate = ar
		}
		if i == 0 || ar > res.MaxAttackRate {
			res.MaxAttackRate = ar
		}
		res.MeanAttackRate += ar
		res.MeanFinalInfected += float64(r.Final.Infected)
		_, peak := r.Curve.Peak()
		res.MeanPeakInfected += float64(peak)
	}
	n := float64(len(runs))
	res.MeanAttackRate /= n
	res.MeanFinalInfected /= n
	res.MeanPeakInfected /= n

	return res
}
