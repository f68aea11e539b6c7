// Package report derives epidemic metrics from simulation output.
//
// Network runs are summarised from their network.History: final infected
// and recovered counts, their fractions of the network size, and the
// per-step S/I/R curve. Compartmental runs are summarised from their
// compartment.Trajectory: peak infected, peak time and final attack rate.
//
// Closed-form quantities come straight from the parameters:
//
//	R0             = beta / gamma
//	latent period  = 1 / sigma
//
// Reach bounds a network outbreak by the component of patient zero, and
// SpreadOf profiles the hops around it and how deep the infection went.
// Compare and CompareWith measure how far the stochastic curve is from the
// mean-field curve with dynamic time warping, optionally returning the
// warping path.
//
// Metrics on a history with no snapshots fail with ErrEmptyHistory.
package report
