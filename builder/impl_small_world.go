// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_small_world.go - implementation of the WattsStrogatz(k, p) constructor.
//
// Canonical model:
//   - Ring lattice: node u joins u+1..u+k/2 (mod n), n·k/2 edges.
//   - Rewiring: for each offset j=1..k/2 and node u asc, with probability p the
//     lattice edge (u, u+j) is replaced by (u, w) where w is uniform over
//     nodes with w≠u and no existing u—w edge. A node already adjacent to
//     every other node keeps its edge.
//   - Rewiring preserves the edge count.
//
// Contract:
//   - k ≥ 2 and even (else ErrInvalidDegree).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - n ≤ k ⇒ complete graph K_n (the lattice cannot be formed).
//   - cfg.rng must be non-nil when p > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·k) lattice + O(n·k) expected rewiring draws.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const minLatticeDegree = 2

// WattsStrogatz returns a Constructor for a small-world graph of lattice
// degree k and rewiring probability p.
func WattsStrogatz(k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minLatticeDegree || k%2 != 0 {
			return fmt.Errorf("%s: k=%d must be even and ≥ %d: %w",
				MethodWattsStrogatz, k, minLatticeDegree, ErrInvalidDegree)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodWattsStrogatz, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}

		n := g.VertexCount()
		if n <= k {
			return completeEdges(g, MethodWattsStrogatz)
		}
		if cfg.rng == nil && p > MinProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}

		half := k / 2
		for j := 1; j <= half; j++ {
			for u := 0; u < n; u++ {
				v := (u + j) % n
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: lattice AddEdge(%d,%d): %w", MethodWattsStrogatz, u, v, err)
				}
			}
		}
		if p == MinProbability {
			return nil
		}

		rng := cfg.rng
		for j := 1; j <= half; j++ {
			for u := 0; u < n; u++ {
				if rng.Float64() >= p {
					continue
				}
				d, err := g.Degree(u)
				if err != nil {
					return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
				}
				if d >= n-1 {
					continue
				}

				w := rng.Intn(n)
				for w == u || g.HasEdge(u, w) {
					w = rng.Intn(n)
				}

				v := (u + j) % n
				if err = g.RemoveEdge(u, v); err != nil {
					return fmt.Errorf("%s: rewire RemoveEdge(%d,%d): %w", MethodWattsStrogatz, u, v, err)
				}
				if err = g.AddEdge(u, w); err != nil {
					return fmt.Errorf("%s: rewire AddEdge(%d,%d): %w", MethodWattsStrogatz, u, w, err)
				}
			}
		}

		return nil
	}
}
