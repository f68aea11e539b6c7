// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g over 0..n-1,
//     resolves cfg, runs cons in order, freezes the result.
//   - Public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. The vertex set of g is fixed; constructors only add or
// remove edges. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex core.Graph, resolves the builder
// configuration from bopts, applies all constructors in order and returns
// the frozen ContactGraph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; freezing O(V + E log d).
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrConstructFailed on a nil constructor.
//   - Constructor errors wrapped as "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.ContactGraph, error) {
	if n < MinVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodBuildGraph, n, MinVertices, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g.Freeze(), nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure over the n vertices of g.

// Complete builds the complete simple graph K_n.
// Complexity: O(n^2) edges.
//func Complete() Constructor

// RandomSparse builds an Erdős–Rényi G(n, p) graph.
// Requires cfg.rng != nil for 0 < p < 1.
// Complexity: O(n^2) Bernoulli trials.
//func RandomSparse(p float64) Constructor

// WattsStrogatz builds a small-world ring lattice of degree k rewired with probability p.
// Requires cfg.rng != nil for p > 0. n ≤ k yields K_n.
// Complexity: O(n*k) expected.
//func WattsStrogatz(k int, p float64) Constructor

// BarabasiAlbert builds a preferential-attachment graph, m edges per new node.
// Requires cfg.rng != nil. n ≤ m yields K_n.
// Complexity: O(n*m) expected.
//func BarabasiAlbert(m int) Constructor
