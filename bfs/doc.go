// Package bfs provides breadth-first search over a contact graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (Unreached if not visited)
//   - Parent: per-vertex predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//
// Why
//
//   - In the network contagion model an infection moves at most one hop per
//     step, so Depth[v] is the earliest step at which v can be infected and
//     the component of patient zero (Reach) bounds the final outbreak size.
//
// Determinism
//
//	Neighbors are expanded in the order the Graph returns them; a
//	core.ContactGraph returns them ascending, so the visit order is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, patientZero, bfs.WithMaxDepth(steps))
//	size, err := bfs.Reach(g, patientZero)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs
