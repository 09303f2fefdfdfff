package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/universo-sim/cosmoscope/internal/catalog"
	"github.com/universo-sim/cosmoscope/internal/dataset"
	"github.com/universo-sim/cosmoscope/internal/elite"
	"github.com/universo-sim/cosmoscope/internal/genome"
)

func newAdamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adam",
		Short: "Find the best universe and export its reseed genome",
		Long: `Locate the maximum-fitness universe ("Adam") among the target
generation's records and export its reconstructed genome as reseed input
for the simulator.

The six quark masses come from the selected record; every other genome
field is filled from the standard default constants, because the
simulator never persists those dimensions in its result tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()

			source := env.dataPath(landscapeFile)
			tbl, err := dataset.Load(source, dataset.ModeReseed)
			if err != nil {
				return err
			}
			env.log.Info("landscape table loaded", "path", source, "rows", tbl.Len())

			target := env.cfg.Analysis.TargetGeneration
			filtered, err := dataset.FilterGeneration(tbl, dataset.ModeReseed.GenerationColumn(), target)
			if err != nil {
				return err
			}
			env.log.Debug("generation filter applied", "target", target, "kept", filtered.Len())

			fitnessCol := dataset.ModeReseed.FitnessColumn()
			bestRow, err := elite.Best(filtered, fitnessCol)
			if err != nil {
				return err
			}
			bestFitness := filtered.Value(fitnessCol, bestRow)

			quarks, err := genome.QuarksFromRecord(filtered, bestRow)
			if err != nil {
				return err
			}
			g := genome.Reconstruct(quarks)

			artifact := env.res.Output(genomeArtifact)
			if err := g.WriteFile(artifact); err != nil {
				return err
			}

			if err := env.recordRun(ctx, catalog.Run{
				Mode:             string(dataset.ModeReseed),
				Source:           source,
				RowsTotal:        tbl.Len(),
				RowsKept:         filtered.Len(),
				TargetGeneration: target,
				BestFitness:      bestFitness,
				EliteSize:        env.cfg.Analysis.EliteSize,
				Artifact:         artifact,
			}); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"best_fitness":      bestFitness,
					"target_generation": target,
					"rows_total":        tbl.Len(),
					"rows_kept":         filtered.Len(),
					"artifact":          artifact,
					"genome":            g,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Adam found: fitness %.6f (generation %d, %d of %d universes)\n",
				bestFitness, target, filtered.Len(), tbl.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Genome written to %s\n", artifact)
			return nil
		},
	}
}
