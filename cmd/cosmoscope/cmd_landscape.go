package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universo-sim/cosmoscope/internal/catalog"
	"github.com/universo-sim/cosmoscope/internal/dataset"
	"github.com/universo-sim/cosmoscope/internal/elite"
	"github.com/universo-sim/cosmoscope/internal/report"
)

func newLandscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "landscape",
		Short: "Summarize the viability landscape for the target generation",
		Long: `Filter the landscape table to the target generation, compute the
top-K elite subset, and write the chart-ready landscape summary for the
plotting layer (global and elite fitness ranges, best point, elite
records).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			source := env.dataPath(landscapeFile)
			tbl, err := dataset.Load(source, dataset.ModeLandscape)
			if err != nil {
				return err
			}
			env.log.Info("landscape table loaded", "path", source, "rows", tbl.Len())

			target := env.cfg.Analysis.TargetGeneration
			filtered, err := dataset.FilterGeneration(tbl, dataset.ModeLandscape.GenerationColumn(), target)
			if err != nil {
				return err
			}

			eliteSet := elite.TopK(filtered, dataset.ModeLandscape.FitnessColumn(), env.cfg.Analysis.EliteSize)
			summary, err := report.BuildLandscape(filtered, eliteSet, tbl.Len(), target)
			if err != nil {
				return err
			}

			artifact := env.res.Output(landscapeReportArtifact)
			if err := report.WriteJSON(artifact, summary); err != nil {
				return err
			}

			if err := env.recordRun(ctx, catalog.Run{
				Mode:             string(dataset.ModeLandscape),
				Source:           source,
				RowsTotal:        tbl.Len(),
				RowsKept:         filtered.Len(),
				TargetGeneration: target,
				BestFitness:      summary.Best.Fitness,
				EliteSize:        eliteSet.Len(),
				Artifact:         artifact,
			}); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generation %d landscape: %d of %d universes, best fitness %.6f\n",
				target, filtered.Len(), tbl.Len(), summary.Best.Fitness)
			fmt.Fprintf(cmd.OutOrStdout(), "Elite subset: %d universes, fitness %.6f..%.6f\n",
				eliteSet.Len(), summary.EliteRange.Min, summary.EliteRange.Max)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", artifact)
			return nil
		},
	}
}
