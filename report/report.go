// SPDX-License-Identifier: MIT
// Package: epinet/report
//
// report.go - final counts and fractions of a network run, R0 and latent period.

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epinet/network"
	"github.com/katalvlaran/epinet/params"
)

var (
	// ErrEmptyHistory indicates a metric was requested on zero snapshots.
	ErrEmptyHistory = errors.New("report: empty history")

	// ErrEmptyTrajectory indicates a metric was requested on a trajectory with no rows.
	ErrEmptyTrajectory = errors.New("report: empty trajectory")

	// ErrSnapshotMismatch indicates a snapshot whose length differs from the graph's node count.
	ErrSnapshotMismatch = errors.New("report: snapshot does not match graph")
)

// Method names used in error context.
const (
	methodFinal     = "Final"
	methodCurve     = "Curve"
	methodSummarize = "Summarize"
	methodReach     = "Reach"
	methodCompare   = "Compare"
)

// FinalState is the outcome of a network run read from its last snapshot.
type FinalState struct {
	// Steps is the number of completed steps (snapshots minus the initial one).
	Steps int `json:"steps"`
	// NetworkSize is the number of nodes in a snapshot.
	NetworkSize int `json:"network_size"`

	Susceptible int `json:"susceptible"`
	Infected    int `json:"infected"`
	Recovered   int `json:"recovered"`

	InfectedFraction  float64 `json:"infected_fraction"`
	RecoveredFraction float64 `json:"recovered_fraction"`
	// AttackRate is the fraction ever infected: (infected + recovered) / size.
	AttackRate float64 `json:"attack_rate"`
}

// Final summarises the last snapshot of h.
func Final(h *network.History) (FinalState, error) {
	if h.Len() == 0 {
		return FinalState{}, fmt.Errorf("%s: %w", methodFinal, ErrEmptyHistory)
	}
	last := h.Last()
	s, i, r := last.Counts()
	fs := FinalState{
		Steps:       h.Len() - 1,
		NetworkSize: len(last),
		Susceptible: s,
		Infected:    i,
		Recovered:   r,
	}
	if n := float64(len(last)); n > 0 {
		fs.InfectedFraction = float64(i) / n
		fs.RecoveredFraction = float64(r) / n
		fs.AttackRate = float64(i+r) / n
	}

	return fs, nil
}

// FinalInfectedCount returns the number of Infected nodes in the last snapshot.
func FinalInfectedCount(h *network.History) (int, error) {
	fs, err := Final(h)
	return fs.Infected, err
}

// FinalRecoveredCount returns the number of Recovered nodes in the last snapshot.
func FinalRecoveredCount(h *network.History) (int, error) {
	fs, err := Final(h)
	return fs.Recovered, err
}

// R0 is the basic reproduction number beta/gamma.
func R0(p params.ParameterSet) float64 { return p.Beta / p.Gamma }

// LatentPeriod is the mean time spent Exposed, 1/sigma.
func LatentPeriod(p params.ParameterSet) float64 { return 1 / p.Sigma }
