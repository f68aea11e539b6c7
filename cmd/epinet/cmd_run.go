package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/compartment"
	"github.com/katalvlaran/epinet/dtw"
	"github.com/katalvlaran/epinet/engine"
	"github.com/katalvlaran/epinet/report"
)

func newSIRCmd() *cobra.Command {
	return newCompartmentalCmd(compartment.KindSIR, "Integrate the SIR model")
}

func newSEIRCmd() *cobra.Command {
	return newCompartmentalCmd(compartment.KindSEIR, "Integrate the SEIR model")
}

func newCompartmentalCmd(kind compartment.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String(),
		Short: short,
		Long: short + ` from one infectious individual over a grid of --days
points and print the trajectory, its peak and R0.

On a numerical failure the partial trajectory is printed before the error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			res, runErr := s.engine.Compartmental(kind, s.params)
			if res != nil {
				if err := writeJSON(cmd, res); err != nil {
					return err
				}
			}
			if err := s.close(cmd); err != nil {
				return err
			}
			return runErr
		},
	}
}

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Simulate contagion on a contact network",
		Long: `Generate a contact network of --network-size nodes and run --steps
steps of the stochastic S→I→R process from one random patient zero.

Examples:
  epinet network                                   # small-world, 200 nodes
  epinet network --graph-type scale-free --seed 7
  epinet network --history                         # include every snapshot
  epinet network --max-hops 3                      # hop profile within 3 hops`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hops, err := maxHops(cmd)
			if err != nil {
				return err
			}
			s, err := newSession(cmd, engine.WithSpreadHops(hops))
			if err != nil {
				return err
			}
			res, err := s.engine.Network(cmd.Context(), s.params)
			if err != nil {
				return err
			}

			out := any(res)
			if withHistory, _ := cmd.Flags().GetBool("history"); withHistory {
				out = struct {
					*engine.NetworkResult
					History any `json:"history"`
				}{res, snapshotsJSON(res.History.Snapshots())}
			}
			if err := writeJSON(cmd, out); err != nil {
				return err
			}
			return s.close(cmd)
		},
	}
	cmd.Flags().Bool("history", false, "Include every snapshot as a string of S/I/R labels")
	cmd.Flags().Int("max-hops", 0, "Radius of the spread hop profile (0 = whole component)")

	return cmd
}

func newEnsembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "Run independent network simulations concurrently",
		Long: `Run --runs independent network simulations. Member i derives its seed
from --seed and i, so the output does not depend on scheduling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hops, err := maxHops(cmd)
			if err != nil {
				return err
			}
			s, err := newSession(cmd, engine.WithSpreadHops(hops))
			if err != nil {
				return err
			}
			runs, _ := cmd.Flags().GetInt("runs")
			res, err := s.engine.Ensemble(cmd.Context(), s.params, runs)
			if err != nil {
				return err
			}
			if brief, _ := cmd.Flags().GetBool("summary"); brief {
				for _, r := range res.Runs {
					r.Curve = report.EpidemicCurve{}
				}
			}
			if err := writeJSON(cmd, res); err != nil {
				return err
			}
			return s.close(cmd)
		},
	}
	cmd.Flags().Int("runs", 10, "Number of ensemble members")
	cmd.Flags().Bool("summary", false, "Omit per-member curves")
	cmd.Flags().Int("max-hops", 0, "Radius of the spread hop profile (0 = whole component)")

	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the SIR model with a network simulation",
		Long: `Run SIR and one network simulation with the same parameters and report
the dynamic time warping distance between the infected fractions.

Examples:
  epinet compare                          # unconstrained, with warping path
  epinet compare --dtw-window 10 --no-path
  epinet compare --dtw-slope-penalty 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := warpOptions(cmd)
			if err != nil {
				return err
			}
			s, err := newSession(cmd, engine.WithDTWOptions(opts))
			if err != nil {
				return err
			}
			res, err := s.engine.Compare(cmd.Context(), s.params)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd, res); err != nil {
				return err
			}
			return s.close(cmd)
		},
	}
	cmd.Flags().Int("dtw-window", dtw.NoWindow, "Sakoe–Chiba band half-width (-1 = none)")
	cmd.Flags().Float64("dtw-slope-penalty", 0, "Extra cost of each non-diagonal warping step")
	cmd.Flags().Bool("no-path", false, "Omit the warping path and use rolling DTW storage")

	return cmd
}

func maxHops(cmd *cobra.Command) (int, error) {
	hops, _ := cmd.Flags().GetInt("max-hops")
	if hops < 0 {
		return 0, fmt.Errorf("invalid --max-hops %d: must be >= 0", hops)
	}
	return hops, nil
}

func warpOptions(cmd *cobra.Command) (dtw.Options, error) {
	o := dtw.DefaultOptions()
	o.Window, _ = cmd.Flags().GetInt("dtw-window")
	o.SlopePenalty, _ = cmd.Flags().GetFloat64("dtw-slope-penalty")
	if noPath, _ := cmd.Flags().GetBool("no-path"); !noPath {
		o.MemoryMode = dtw.FullMatrix
		o.ReturnPath = true
	}
	if o.Window < dtw.NoWindow || o.SlopePenalty < 0 {
		return dtw.Options{}, fmt.Errorf("invalid DTW options window=%d slope-penalty=%g: %w",
			o.Window, o.SlopePenalty, dtw.ErrBadInput)
	}
	return o, nil
}
