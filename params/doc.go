// SPDX-License-Identifier: MIT

// Package params defines the ParameterSet shared by the compartmental and
// the network model families.
//
// A ParameterSet is a plain value: it is built once (New, Parse, Load),
// validated at construction and never mutated afterwards. Every invalid
// input surfaces as ErrInvalidConfig so callers branch with errors.Is:
//
//	p, err := params.New(params.WithBeta(0.3), params.WithGamma(0.1))
//	if errors.Is(err, params.ErrInvalidConfig) {
//		// reject the run
//	}
//
// Rates (beta, gamma, sigma) must lie in (0,1]. Sizes and horizons
// (N, network_size, days) must be positive; steps may be zero. graph_type
// must name a topology known to package builder, and seed must be non-zero.
package params
