// SPDX-License-Identifier: MIT
// Package: epinet/core
//
// methods.go - thread-safe mutation and queries on the construction-phase Graph.
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
//
// Determinism:
//   - Neighbors and Edges return ascending results regardless of insertion order.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge inserts the undirected edge u—v.
//
// Errors:
//   - ErrVertexNotFound if u or v is outside 0..n-1.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if _, dup := g.adj[u][v]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge u—v.
// Returns ErrEdgeNotFound if it is absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair(u, v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u—v exists. Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adj[v]), nil
}

// Neighbors returns a freshly allocated, ascending slice of v's neighbors.
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}

	return sortedKeys(g.adj[v]), nil
}

// Edges returns every edge once, sorted by (U, V).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Freeze snapshots the graph into an immutable ContactGraph.
// Later mutations of g do not affect the returned value.
// Complexity: O(V + E log d).
func (g *Graph) Freeze() *ContactGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	offsets := make([]int, n+1)
	targets := make([]int, 0, 2*g.edgeCount)
	for v := 0; v < n; v++ {
		targets = append(targets, sortedKeys(g.adj[v])...)
		offsets[v+1] = len(targets)
	}

	return &ContactGraph{offsets: offsets, targets: targets}
}

// checkPair validates an endpoint pair. Caller holds the lock.
func (g *Graph) checkPair(u, v int) error {
	if !g.inRange(u) {
		return fmt.Errorf("vertex %d: %w", u, ErrVertexNotFound)
	}
	if !g.inRange(v) {
		return fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("edge %d—%d: %w", u, v, ErrLoopNotAllowed)
	}

	return nil
}

func (g *Graph) inRange(v int) bool { return v >= 0 && v < len(g.adj) }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
