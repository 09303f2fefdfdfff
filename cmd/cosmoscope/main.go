package main

import (
	"encoding/json"
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
		Use:   "cosmoscope",
		Short: "Analysis layer for the universo cosmic-evolution simulator",
		Long: `cosmoscope analyzes the result tables written by the universo simulator.

It locates the best-performing universe ("Adam"), reconstructs a complete
genome for reseeding the simulator, and computes the elite and landscape
summaries the plotting layer consumes.

Input files are read from <base>/data and artifacts are written to <base>,
where <base> defaults to the directory containing this binary. Analysis
parameters (target generation, elite size) come from <base>/cosmoscope.yaml,
not from flags, so a run is reproducible from the base directory alone.`,
		SilenceUsage: true,
	}

	// Operational flags only; analysis parameters live in the config file.
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("base", "", "Base directory (defaults to the executable's directory)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAdamCmd(),
		newLandscapeCmd(),
		newEvolutionCmd(),
		newViabilityCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "cosmoscope version %s\n", version)
			}
		},
	}
}
