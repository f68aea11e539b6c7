// SPDX-License-Identifier: MIT
// Package: epinet/compartment
//
// models.go - SIR / SEIR right-hand sides and the model Kind.

package compartment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/epinet/params"
)

// Derivative returns d(state)/dt at time t. The returned slice is fresh.
type Derivative func(state []float64, t float64) []float64

// SIR returns (dS, dI, dR) for state (S, I, R):
//
//	dS = −β·S·I/N,  dI = β·S·I/N − γ·I,  dR = γ·I.
//
// The three derivatives sum to zero. t is unused; the system is autonomous.
func SIR(state []float64, t, beta, gamma, n float64) []float64 {
	s, i := state[0], state[1]
	infection := beta * s * i / n
	recovery := gamma * i

	return []float64{-infection, infection - recovery, recovery}
}

// SEIR returns (dS, dE, dI, dR) for state (S, E, I, R):
//
//	dS = −β·S·I/N,  dE = β·S·I/N − σ·E,  dI = σ·E − γ·I,  dR = γ·I.
func SEIR(state []float64, t, beta, gamma, sigma, n float64) []float64 {
	s, e, i := state[0], state[1], state[2]
	infection := beta * s * i / n
	onset := sigma * e
	recovery := gamma * i

	return []float64{-infection, infection - onset, onset - recovery, recovery}
}

// Kind selects a compartmental model.
type Kind int

const (
	// KindSIR is the Susceptible–Infected–Recovered model.
	KindSIR Kind = iota
	// KindSEIR adds an Exposed (latent) compartment.
	KindSEIR
)

var (
	sirColumns  = []string{"S", "I", "R"}
	seirColumns = []string{"S", "E", "I", "R"}
)

// String returns "sir" or "seir".
func (k Kind) String() string {
	switch k {
	case KindSIR:
		return "sir"
	case KindSEIR:
		return "seir"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves "sir" or "seir", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sir":
		return KindSIR, nil
	case "seir":
		return KindSEIR, nil
	default:
		return 0, fmt.Errorf("compartment: unknown model %q: %w", s, params.ErrInvalidConfig)
	}
}

// MarshalText encodes k as "sir" or "seir".
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindSIR && k != KindSEIR {
		return nil, fmt.Errorf("compartment: cannot encode %v: %w", k, params.ErrInvalidConfig)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a model name with ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Columns returns the compartment names in state order.
func (k Kind) Columns() []string {
	if k == KindSEIR {
		return append([]string(nil), seirColumns...)
	}
	return append([]string(nil), sirColumns...)
}

// Dim returns the state length.
func (k Kind) Dim() int { return len(k.columns()) }

func (k Kind) columns() []string {
	if k == KindSEIR {
		return seirColumns
	}
	return sirColumns
}

// Derivative binds the rates and population of p to the model.
func (k Kind) Derivative(p params.ParameterSet) Derivative {
	n := float64(p.N)
	if k == KindSEIR {
		return func(state []float64, t float64) []float64 {
			return SEIR(state, t, p.Beta, p.Gamma, p.Sigma, n)
		}
	}
	return func(state []float64, t float64) []float64 {
		return SIR(state, t, p.Beta, p.Gamma, n)
	}
}

// InitialState returns one infectious individual in a susceptible
// population of n: (n−1, 1, 0) or (n−1, 0, 1, 0).
func InitialState(k Kind, n int) []float64 {
	s := float64(n - 1)
	if k == KindSEIR {
		return []float64{s, 0, 1, 0}
	}
	return []float64{s, 1, 0}
}

// TimeGrid returns days evenly spaced points from 0 to days inclusive.
// days == 1 yields the single point 0; days < 1 yields nil.
func TimeGrid(days int) []float64 {
	if days < 1 {
		return nil
	}
	if days == 1 {
		return []float64{0}
	}
	grid := make([]float64, days)
	step := float64(days) / float64(days-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[days-1] = float64(days)

	return grid
}
