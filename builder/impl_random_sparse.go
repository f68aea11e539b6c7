// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Exactly one rng.Float64() per pair; an edge is kept when the draw is < p.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// over the n vertices of g with independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if p == MinProbability {
			return nil
		}
		if p == MaxProbability {
			return completeEdges(g, MethodRandomSparse)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
