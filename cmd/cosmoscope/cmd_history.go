package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/universo-sim/cosmoscope/internal/catalog"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		Long:  `List recent runs from the catalog, newest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := env.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				if runs == nil {
					runs = []catalog.Run{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(runs)
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tMODE\tROWS\tKEPT\tBEST FITNESS\tARTIFACT")
			for _, r := range runs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.6f\t%s\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode,
					r.RowsTotal, r.RowsKept, r.BestFitness, r.Artifact)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 = all)")
	return cmd
}
