// Package engine wires the epinet packages into complete runs.
//
// An Engine turns a params.ParameterSet into:
//
//	SIR / SEIR   compartment.Runner + report.Summarize
//	Network      builder.Generate → network.Simulator → report.Final / Curve / Reach / SpreadOf
//	Ensemble     independent Network runs, concurrently, ordered by index
//	Compare      SIR trajectory vs network curve via report.CompareWith
//
// Randomness is derived from ParameterSet.Seed only: the contact graph uses
// rng.StreamGraph, the contagion process rng.StreamContagion, and ensemble
// member i runs with rng.MemberSeed(seed, i). The same parameters therefore
// reproduce the same histories, whatever the scheduling of an ensemble.
//
// An unknown graph_type is reported as params.ErrInvalidConfig.
package engine
