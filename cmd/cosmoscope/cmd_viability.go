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

func newViabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viability",
		Short: "Summarize the alpha-vs-fitness viability table",
		Long: `Read the fine-structure-constant viability table and write its
chart-ready summary, including where the best universe sits relative to
the observed alpha (~1/137).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			source := env.dataPath(viabilityFile)
			tbl, err := dataset.Load(source, dataset.ModeViability)
			if err != nil {
				return err
			}
			env.log.Info("viability table loaded", "path", source, "rows", tbl.Len())

			summary, err := report.BuildViability(tbl)
			if err != nil {
				return err
			}

			artifact := env.res.Output(viabilityReportArtifact)
			if err := report.WriteJSON(artifact, summary); err != nil {
				return err
			}

			if err := env.recordRun(ctx, catalog.Run{
				Mode:        string(dataset.ModeViability),
				Source:      source,
				RowsTotal:   tbl.Len(),
				RowsKept:    tbl.Len(),
				BestFitness: summary.BestFitness,
				Artifact:    artifact,
			}); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Viability: %d universes, best fitness %.6f at alpha %.6e (observed %.6e)\n",
				summary.Rows, summary.BestFitness, summary.BestAlpha, summary.ObservedAlpha)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", artifact)
			return nil
		},
	}
}
