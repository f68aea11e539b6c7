// Package epinet is a compartmental and network epidemic simulation engine.
//
// What is epinet?
//
//	A small set of packages that model how an infection spreads through a
//	closed population, at two levels of detail:
//		• Mean field: SIR and SEIR ordinary differential equations,
//		  integrated with an adaptive Dormand–Prince 5(4) solver
//		• Contact networks: a stochastic S→I→R process on small-world,
//		  scale-free or random graphs, stepped over a frozen snapshot
//		• Metrics: R0, latent period, final attack rate, epidemic curves,
//		  and a DTW distance between the two model families
//
// Packages (leaves first):
//
//	params/      - validated ParameterSet, YAML loading, ErrInvalidConfig
//	rng/         - seeded streams for the graph, the contagion and ensembles
//	core/        - mutable Graph for construction, frozen CSR ContactGraph
//	builder/     - Watts–Strogatz, Barabási–Albert and Erdős–Rényi generators
//	ode/         - adaptive Dormand–Prince 5(4) over a caller time grid
//	compartment/ - SIR / SEIR right-hand sides, Integrate, Runner
//	network/     - double-buffered contagion Simulator and History
//	bfs/         - reachability of patient zero
//	dtw/         - dynamic time warping between epidemic curves
//	report/      - final counts, curves, summaries, model comparison
//	telemetry/   - Prometheus collectors
//	engine/      - end-to-end runs and concurrent ensembles
//	cmd/epinet/  - cobra CLI printing JSON
//
// Quick start:
//
//	p, _ := params.New(params.WithGraphType("scale-free"), params.WithSeed(7))
//	res, err := engine.New().Network(ctx, p)
//	fmt.Println(res.Final.AttackRate)
//
// The same ParameterSet always produces the same histories, for any worker
// count and any ensemble scheduling.
package epinet
