// SPDX-License-Identifier: MIT
// Package: epinet/params
//
// params.go - ParameterSet, defaults and functional options.

package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig reports a configuration value outside its domain:
// unknown graph type, non-positive sizes, rates outside (0,1].
var ErrInvalidConfig = errors.New("params: invalid config")

// Defaults follow the reference scenario (R0 = 3, latent period 5 days).
const (
	DefaultBeta        = 0.3
	DefaultGamma       = 0.1
	DefaultSigma       = 0.2
	DefaultN           = 1000
	DefaultDays        = 160
	DefaultNetworkSize = 200
	DefaultSteps       = 50
	DefaultGraphType   = "small-world"
	DefaultSeed        = int64(1)
)

// ParameterSet is the validated configuration of one run.
type ParameterSet struct {
	// Beta is the transmission rate.
	Beta float64 `json:"beta" yaml:"beta" validate:"gt=0,lte=1"`
	// Gamma is the recovery rate.
	Gamma float64 `json:"gamma" yaml:"gamma" validate:"gt=0,lte=1"`
	// Sigma is the latency transition rate (SEIR only).
	Sigma float64 `json:"sigma" yaml:"sigma" validate:"gt=0,lte=1"`

	// N is the compartmental population size.
	N int `json:"n" yaml:"n" validate:"gt=0"`
	// NetworkSize is the number of nodes of the contact graph.
	NetworkSize int `json:"network_size" yaml:"network_size" validate:"gt=0"`
	// Days is the integration horizon.
	Days int `json:"days" yaml:"days" validate:"gt=0"`
	// Steps is the number of discrete network steps.
	Steps int `json:"steps" yaml:"steps" validate:"gte=0"`

	// GraphType selects the contact graph topology.
	GraphType string `json:"graph_type" yaml:"graph_type" validate:"required,graphtype"`
	// Seed drives every random stream of a run. Zero is rejected: it is
	// reserved by package rng as "use the default seed".
	Seed int64 `json:"seed" yaml:"seed" validate:"ne=0"`
	// Workers > 1 enables the chunked parallel step kernel.
	Workers int `json:"workers" yaml:"workers" validate:"gte=0"`
}

// Option mutates a ParameterSet under construction.
type Option func(*ParameterSet)

// Default returns the reference ParameterSet. It is always valid.
func Default() ParameterSet {
	return ParameterSet{
		Beta:        DefaultBeta,
		Gamma:       DefaultGamma,
		Sigma:       DefaultSigma,
		N:           DefaultN,
		NetworkSize: DefaultNetworkSize,
		Days:        DefaultDays,
		Steps:       DefaultSteps,
		GraphType:   DefaultGraphType,
		Seed:        DefaultSeed,
	}
}

// New applies opts over Default and validates the result.
func New(opts ...Option) (ParameterSet, error) {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return ParameterSet{}, err
	}

	return p, nil
}

// WithBeta sets the transmission rate.
func WithBeta(beta float64) Option { return func(p *ParameterSet) { p.Beta = beta } }

// WithGamma sets the recovery rate.
func WithGamma(gamma float64) Option { return func(p *ParameterSet) { p.Gamma = gamma } }

// WithSigma sets the latency transition rate.
func WithSigma(sigma float64) Option { return func(p *ParameterSet) { p.Sigma = sigma } }

// WithPopulation sets N.
func WithPopulation(n int) Option { return func(p *ParameterSet) { p.N = n } }

// WithNetworkSize sets the contact graph size.
func WithNetworkSize(n int) Option { return func(p *ParameterSet) { p.NetworkSize = n } }

// WithDays sets the integration horizon.
func WithDays(days int) Option { return func(p *ParameterSet) { p.Days = days } }

// WithSteps sets the number of network steps.
func WithSteps(steps int) Option { return func(p *ParameterSet) { p.Steps = steps } }

// WithGraphType sets the contact graph topology tag.
func WithGraphType(kind string) Option { return func(p *ParameterSet) { p.GraphType = kind } }

// WithSeed sets the run seed.
func WithSeed(seed int64) Option { return func(p *ParameterSet) { p.Seed = seed } }

// WithWorkers sets the step-kernel worker count.
func WithWorkers(workers int) Option { return func(p *ParameterSet) { p.Workers = workers } }

// Validate checks every field against its domain. Graph type names are
// resolved with builder.ParseGraphKind, aliases included.
func (p ParameterSet) Validate() error {
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// String renders the set in a compact, log-friendly form.
func (p ParameterSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "beta=%g gamma=%g sigma=%g", p.Beta, p.Gamma, p.Sigma)
	fmt.Fprintf(&b, " N=%d network_size=%d days=%d steps=%d", p.N, p.NetworkSize, p.Days, p.Steps)
	fmt.Fprintf(&b, " graph_type=%s seed=%d", p.GraphType, p.Seed)

	return b.String()
}

// formatValidationError turns validator output into one ErrInvalidConfig
// listing every offending field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "gt":
		if fe.Param() == "0" && fe.Kind().String() == "float64" {
			return fmt.Sprintf("%s must be in (0,1], got %v", name, fe.Value())
		}
		return fmt.Sprintf("%s must be > %s, got %v", name, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be in (0,1], got %v", name, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", name, fe.Param(), fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "graphtype":
		return fmt.Sprintf("%s %q is not one of small-world, scale-free, random", name, fe.Value())
	case "ne":
		return fmt.Sprintf("%s must not be %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", name, fe.Tag())
	}
}
