// SPDX-License-Identifier: MIT
// Package: epinet/core
//
// types.go - sentinel errors, Edge and Graph declarations.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an index outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected contact between two vertices, normalized so U < V.
type Edge struct {
	U int
	V int
}

// Graph is the mutable construction-phase contact graph.
//
// mu guards adj and edgeCount. The vertex set 0..n-1 is fixed at creation.
type Graph struct {
	mu sync.RWMutex

	// adj[v] holds the neighbor set of v; mirrored for every edge.
	adj       []map[int]struct{}
	edgeCount int
}

// NewGraph creates an edgeless graph over the vertices 0..n-1.
// A negative n yields an empty graph.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{adj: adj}
}
