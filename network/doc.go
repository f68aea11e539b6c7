// Package network simulates stochastic S→I→R contagion over a contact graph.
//
// Each node is Susceptible, Infected or Recovered and only moves forward:
// there is no reinfection. A run starts with one uniformly chosen patient
// zero and performs a fixed number of discrete steps. Within a step every
// node reads the same frozen snapshot, so an infection never spreads more
// than one hop per step.
//
// Runs are reproducible: the same topology, parameters and contagion RNG
// yield the same History regardless of the worker count.
//
//	sim, err := network.NewSimulator(g, p, network.WithLogger(log))
//	run, err := sim.Run(rng.Derive(p.Seed, rng.StreamContagion))
//	last := run.History.Last()
package network
