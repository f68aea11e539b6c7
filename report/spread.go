// SPDX-License-Identifier: MIT
// Package: epinet/report
//
// spread.go - hop structure around patient zero and the longest chain of
// infection a run could have followed.

package report

import (
	"fmt"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/network"
)

const methodSpread = "SpreadOf"

// Spread describes the neighbourhood of patient zero and how deep the
// outbreak went into it.
type Spread struct {
	// MaxHops is the search radius, 0 for the whole component.
	MaxHops int `json:"max_hops"`
	// Reached counts nodes within MaxHops of patient zero, itself included.
	Reached int `json:"reached"`
	// HopCounts[d] is the number of nodes at hop distance d.
	HopCounts []int `json:"hop_counts"`
	// Eccentricity is the largest hop distance reached.
	Eccentricity int `json:"eccentricity"`

	// InfectedDepth is the largest hop distance from patient zero to an
	// ever-infected node, moving only through ever-infected nodes.
	InfectedDepth int `json:"infected_depth"`
	// Chain is a shortest such path to the deepest ever-infected node.
	Chain []int `json:"chain"`
}

// SpreadOf searches g from patientZero up to maxHops (0 = unlimited) and,
// given the final snapshot of a run, measures the depth of the infected
// region. Nodes that are not Susceptible in final were infected at some
// step, since a node never returns to Susceptible. final may be nil, in
// which case only the hop structure is computed.
func SpreadOf(g bfs.Graph, patientZero int, final network.Snapshot, maxHops int) (Spread, error) {
	s := Spread{MaxHops: maxHops}
	res, err := bfs.BFS(g, patientZero,
		bfs.WithMaxDepth(maxHops),
		bfs.WithOnVisit(func(_, depth int) error {
			for len(s.HopCounts) <= depth {
				s.HopCounts = append(s.HopCounts, 0)
			}
			s.HopCounts[depth]++
			return nil
		}),
	)
	if err != nil {
		return Spread{}, fmt.Errorf("%s: %w", methodSpread, err)
	}
	s.Reached = res.Reached()
	s.Eccentricity = res.Eccentricity()

	if final == nil {
		return s, nil
	}
	if len(final) != g.NodeCount() {
		return Spread{}, fmt.Errorf("%s: snapshot has %d nodes, graph has %d: %w",
			methodSpread, len(final), g.NodeCount(), ErrSnapshotMismatch)
	}
	infected, err := bfs.BFS(g, patientZero, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return final[nbr] != network.Susceptible
	}))
	if err != nil {
		return Spread{}, fmt.Errorf("%s: %w", methodSpread, err)
	}
	deepest := infected.Order[len(infected.Order)-1]
	s.InfectedDepth = infected.Eccentricity()
	if s.Chain, err = infected.PathTo(deepest); err != nil {
		return Spread{}, fmt.Errorf("%s: %w", methodSpread, err)
	}

	return s, nil
}
