// Command epinet runs compartmental and network epidemic simulations and
// prints the results as JSON.
//
//	epinet sir --days 160
//	epinet network --graph-type scale-free --network-size 500 --seed 7
//	epinet ensemble --runs 32 --config scenario.yaml
//	epinet compare --metrics-out epinet.prom
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "epinet",
		Short: "Compartmental and network epidemic simulation",
		Long: `epinet integrates the SIR and SEIR compartmental models and simulates
stochastic S→I→R contagion on small-world, scale-free and random contact
networks.

Parameters come from built-in defaults, then an optional YAML file given
with --config, then individual flags.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML parameter file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file after the run")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	addParamFlags(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newSIRCmd(),
		newSEIRCmd(),
		newNetworkCmd(),
		newEnsembleCmd(),
		newCompareCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd, map[string]string{"version": version})
		},
	}
}
