// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_scale_free.go - implementation of the BarabasiAlbert(m) constructor.
//
// Canonical model:
//   - Seed: a star on nodes 0..m with center 0 (m edges).
//   - Growth: each new node s = m+1..n-1 attaches to m distinct targets drawn
//     uniformly from the repeated-node list, where every node appears once
//     per incident edge (degree-proportional sampling).
//   - Edge count: m + m·(n−m−1) for n > m.
//
// Contract:
//   - m ≥ 1 (else ErrTooFewVertices).
//   - n ≤ m ⇒ complete graph K_n.
//   - cfg.rng must be non-nil when growth happens, n > m+1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·m) expected.
//   - Space: O(n·m) for the repeated-node list.
//
// Determinism:
//   - Targets are attached in the order they were first drawn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

const minAttach = 1

// BarabasiAlbert returns a Constructor for a scale-free graph in which
// every new node brings m edges.
func BarabasiAlbert(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minAttach {
			return fmt.Errorf("%s: m=%d < min=%d: %w", MethodBarabasiAlbert, m, minAttach, ErrTooFewVertices)
		}

		n := g.VertexCount()
		if n <= m {
			return completeEdges(g, MethodBarabasiAlbert)
		}
		if cfg.rng == nil && n > m+1 {
			return fmt.Errorf("%s: rng is required: %w", MethodBarabasiAlbert, ErrNeedRandSource)
		}

		// star seed; the center is listed once per leaf
		repeated := make([]int, 0, 2*m*(n-m))
		for leaf := 1; leaf <= m; leaf++ {
			if err := g.AddEdge(0, leaf); err != nil {
				return fmt.Errorf("%s: seed AddEdge(0,%d): %w", MethodBarabasiAlbert, leaf, err)
			}
			repeated = append(repeated, 0)
		}
		for leaf := 1; leaf <= m; leaf++ {
			repeated = append(repeated, leaf)
		}

		rng := cfg.rng
		targets := make([]int, 0, m)
		chosen := make(map[int]struct{}, m)
		for s := m + 1; s < n; s++ {
			targets = targets[:0]
			clear(chosen)
			for len(targets) < m {
				x := repeated[rng.Intn(len(repeated))]
				if _, dup := chosen[x]; dup {
					continue
				}
				chosen[x] = struct{}{}
				targets = append(targets, x)
			}

			for _, t := range targets {
				if err := g.AddEdge(s, t); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodBarabasiAlbert, s, t, err)
				}
			}
			repeated = append(repeated, targets...)
			for i := 0; i < m; i++ {
				repeated = append(repeated, s)
			}
		}

		return nil
	}
}
