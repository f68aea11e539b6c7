// Package compartment implements the deterministic SIR and SEIR
// compartmental epidemic models.
//
// A closed population of N individuals is split into compartments:
//
//	S  susceptible
//	E  exposed, infected but not yet infectious (SEIR only)
//	I  infectious
//	R  recovered, permanently immune
//
// SIR and SEIR are the raw right-hand sides; Kind binds them to a
// params.ParameterSet. Integrate solves a model over a caller time grid with
// the adaptive integrator of package ode and validates its inputs first:
// a bad initial state or grid is params.ErrInvalidConfig, a solver failure is
// ErrNumericalFailure with the partial trajectory.
//
// Runner wires the reference scenario (one infectious individual, the
// TimeGrid of p.Days) with zap logging and Prometheus metrics.
package compartment
