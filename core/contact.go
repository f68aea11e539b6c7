// SPDX-License-Identifier: MIT
// Package: epinet/core
//
// contact.go - the frozen, read-only ContactGraph (compressed sparse rows).

package core

import "sort"

// ContactGraph is an immutable simple undirected graph over 0..n-1.
// Neighbors of v are targets[offsets[v]:offsets[v+1]], sorted ascending.
// A ContactGraph is safe for concurrent readers without locking.
type ContactGraph struct {
	offsets []int
	targets []int
}

// GraphStats summarizes the degree distribution of a ContactGraph.
type GraphStats struct {
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	MinDegree  int     `json:"min_degree"`
	MaxDegree  int     `json:"max_degree"`
	MeanDegree float64 `json:"mean_degree"`
	Isolated   int     `json:"isolated"`
}

// NodeCount returns the number of vertices.
func (c *ContactGraph) NodeCount() int {
	if len(c.offsets) == 0 {
		return 0
	}
	return len(c.offsets) - 1
}

// EdgeCount returns the number of undirected edges.
func (c *ContactGraph) EdgeCount() int { return len(c.targets) / 2 }

// Neighbors returns v's neighbors in ascending order, or nil when v is out
// of range. The slice aliases internal storage and MUST NOT be modified;
// its capacity is clipped so appends never write into a sibling row.
// Complexity: O(1).
func (c *ContactGraph) Neighbors(v int) []int {
	if v < 0 || v >= c.NodeCount() {
		return nil
	}
	lo, hi := c.offsets[v], c.offsets[v+1]

	return c.targets[lo:hi:hi]
}

// Degree returns len(Neighbors(v)).
func (c *ContactGraph) Degree(v int) int {
	if v < 0 || v >= c.NodeCount() {
		return 0
	}
	return c.offsets[v+1] - c.offsets[v]
}

// HasEdge reports whether u—v exists.
// Complexity: O(log d).
func (c *ContactGraph) HasEdge(u, v int) bool {
	nbrs := c.Neighbors(u)
	i := sort.SearchInts(nbrs, v)

	return i < len(nbrs) && nbrs[i] == v
}

// Edges returns every edge once, sorted by (U, V).
// Complexity: O(V + E).
func (c *ContactGraph) Edges() []Edge {
	out := make([]Edge, 0, c.EdgeCount())
	for u := 0; u < c.NodeCount(); u++ {
		for _, v := range c.Neighbors(u) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Stats returns the degree summary in one O(V) pass.
func (c *ContactGraph) Stats() GraphStats {
	n := c.NodeCount()
	s := GraphStats{Nodes: n, Edges: c.EdgeCount()}
	if n == 0 {
		return s
	}
	s.MinDegree = c.Degree(0)
	for v := 0; v < n; v++ {
		d := c.Degree(v)
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	s.MeanDegree = float64(2*s.Edges) / float64(n)

	return s
}
