package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universo-sim/cosmoscope/internal/catalog"
	"github.com/universo-sim/cosmoscope/internal/dataset"
	"github.com/universo-sim/cosmoscope/internal/report"
)

func newEvolutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evolution",
		Short: "Summarize the evolution log",
		Long: `Read the per-generation evolution log and write the chart-ready
trajectory summary: best fitness per generation and which particle
generation dominated the resulting chemistry over the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			source := env.dataPath(evolutionFile)
			tbl, err := dataset.Load(source, dataset.ModeEvolution)
			if err != nil {
				return err
			}
			env.log.Info("evolution log loaded", "path", source, "rows", tbl.Len())

			summary, err := report.BuildEvolution(tbl)
			if err != nil {
				return err
			}

			artifact := env.res.Output(evolutionReportArtifact)
			if err := report.WriteJSON(artifact, summary); err != nil {
				return err
			}

			// The evolution log is a trajectory, not a landscape: no
			// generation filter applies and every row is kept.
			if err := env.recordRun(ctx, catalog.Run{
				Mode:        string(dataset.ModeEvolution),
				Source:      source,
				RowsTotal:   tbl.Len(),
				RowsKept:    tbl.Len(),
				BestFitness: summary.PeakBestFitness,
				Artifact:    artifact,
			}); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Evolution: %d generations, final fitness %.6f (peak %.6f)\n",
				summary.Generations, summary.FinalBestFitness, summary.PeakBestFitness)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", artifact)
			return nil
		},
	}
}
