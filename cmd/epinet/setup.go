package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/epinet/engine"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/telemetry"
)

// addParamFlags registers one persistent flag per ParameterSet field.
// Only flags set explicitly override the defaults and the config file.
func addParamFlags(cmd *cobra.Command) {
	d := params.Default()
	f := cmd.PersistentFlags()
	f.Float64("beta", d.Beta, "Transmission rate per contact")
	f.Float64("gamma", d.Gamma, "Recovery rate")
	f.Float64("sigma", d.Sigma, "Incubation rate (SEIR)")
	f.Int("n", d.N, "Population size (compartmental models)")
	f.Int("days", d.Days, "Days to integrate (compartmental models)")
	f.Int("network-size", d.NetworkSize, "Number of nodes in the contact network")
	f.Int("steps", d.Steps, "Network simulation steps")
	f.String("graph-type", d.GraphType, "Contact network: small-world, scale-free or random")
	f.Int64("seed", d.Seed, "Random seed (non-zero)")
	f.Int("workers", d.Workers, "Parallel workers per network step (0 = sequential)")
}

// loadParams resolves defaults, --config and explicit flags, then validates.
func loadParams(cmd *cobra.Command) (params.ParameterSet, error) {
	p := params.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if p, err = params.Load(path); err != nil {
			return params.ParameterSet{}, err
		}
	}

	f := cmd.Flags()
	var opts []params.Option
	if f.Changed("beta") {
		v, _ := f.GetFloat64("beta")
		opts = append(opts, params.WithBeta(v))
	}
	if f.Changed("gamma") {
		v, _ := f.GetFloat64("gamma")
		opts = append(opts, params.WithGamma(v))
	}
	if f.Changed("sigma") {
		v, _ := f.GetFloat64("sigma")
		opts = append(opts, params.WithSigma(v))
	}
	if f.Changed("n") {
		v, _ := f.GetInt("n")
		opts = append(opts, params.WithPopulation(v))
	}
	if f.Changed("days") {
		v, _ := f.GetInt("days")
		opts = append(opts, params.WithDays(v))
	}
	if f.Changed("network-size") {
		v, _ := f.GetInt("network-size")
		opts = append(opts, params.WithNetworkSize(v))
	}
	if f.Changed("steps") {
		v, _ := f.GetInt("steps")
		opts = append(opts, params.WithSteps(v))
	}
	if f.Changed("graph-type") {
		v, _ := f.GetString("graph-type")
		opts = append(opts, params.WithGraphType(v))
	}
	if f.Changed("seed") {
		v, _ := f.GetInt64("seed")
		opts = append(opts, params.WithSeed(v))
	}
	if f.Changed("workers") {
		v, _ := f.GetInt("workers")
		opts = append(opts, params.WithWorkers(v))
	}
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return params.ParameterSet{}, err
	}

	return p, nil
}

// newLogger builds a production JSON logger on stderr at the --log-level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Sampling = nil
	return cfg.Build()
}

// session bundles what every simulation command needs.
type session struct {
	params params.ParameterSet
	engine *engine.Engine
	log    *zap.Logger
	reg    *prometheus.Registry
}

func newSession(cmd *cobra.Command, extra ...engine.Option) (*session, error) {
	p, err := loadParams(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	opts := append([]engine.Option{
		engine.WithLogger(log),
		engine.WithRecorder(telemetry.NewRecorder(reg)),
	}, extra...)
	eng := engine.New(opts...)
	log.Debug("parameters resolved", zap.Stringer("params", p))

	return &session{params: p, engine: eng, log: log, reg: reg}, nil
}

// close flushes the logger and writes the metrics file when requested.
func (s *session) close(cmd *cobra.Command) error {
	_ = s.log.Sync()
	path, _ := cmd.Flags().GetString("metrics-out")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, s.reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
