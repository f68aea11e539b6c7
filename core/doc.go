// SPDX-License-Identifier: MIT

// Package core provides the contact graph primitives used by the network
// contagion simulator.
//
// Two types cover the two phases of a graph's life:
//
//   - Graph: a thread-safe, mutable, simple undirected graph over the
//     vertices 0..n-1. Generators add and rewire edges on it. Self-loops
//     return ErrLoopNotAllowed and parallel edges ErrMultiEdgeNotAllowed,
//     so a Graph is simple by construction.
//   - ContactGraph: the frozen, read-only form produced by Graph.Freeze.
//     Adjacency is stored in compressed sparse rows (one offsets slice and
//     one targets slice), neighbor lists are sorted ascending, and no lock
//     is needed because nothing can mutate it.
//
// Determinism:
//
//   - Neighbors, Edges and Stats return sorted / order-independent results,
//     so two graphs with the same edge set are indistinguishable.
//
// Quick example:
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	cg := g.Freeze()
//	cg.Neighbors(1) // [0 2]
package core
