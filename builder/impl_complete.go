// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// impl_complete.go - implementation of the Complete() constructor.
//
// Contract:
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Pairs already present are left alone, so Complete composes with other constructors.
//
// Complexity:
//   • Time: O(n²) edge emission.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/epinet/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return completeEdges(g, MethodComplete)
	}
}

// completeEdges adds every missing pair of g in lexicographic (i,j) order.
// method tags the error context of the calling constructor.
func completeEdges(g *core.Graph, method string) error {
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, i, j, err)
			}
		}
	}

	return nil
}
