// Package builder generates contact graphs for the network contagion model.
//
// It follows the functional-options constructor pattern:
//
//   - Constructor: a closure that mutates a fixed-size core.Graph using the
//     resolved builderConfig.
//   - BuilderOption: mutates builderConfig before construction (WithSeed, WithRand).
//   - BuildGraph: creates the n-vertex graph, runs constructors in order and
//     freezes the result into an immutable core.ContactGraph.
//
// Topologies:
//
//   - WattsStrogatz(k, p): ring lattice of even degree k with rewiring probability p.
//   - BarabasiAlbert(m):   preferential attachment, m edges per new node.
//   - RandomSparse(p):     Erdős–Rényi G(n, p).
//   - Complete():          K_n, used as the small-n fallback of the two above.
//
// GraphKind names the three epidemic topologies (small-world, scale-free,
// random) and Generate builds one with the reference parameters
// (k=4, p=0.3; m=2; p=0.05).
//
// Guarantees:
//
//   - Output graphs are simple: no self-loops, no duplicate edges.
//   - Same seed and the same constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors checked with errors.Is.
package builder
