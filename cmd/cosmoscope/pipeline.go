package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/universo-sim/cosmoscope/internal/catalog"
	"github.com/universo-sim/cosmoscope/internal/config"
	"github.com/universo-sim/cosmoscope/internal/logging"
	"github.com/universo-sim/cosmoscope/internal/paths"
)

// Simulator artifact names under <base>/data.
const (
	landscapeFile = "landscape_data.csv"
	evolutionFile = "final_evolution.csv"
	viabilityFile = "viability_data.csv"
)

// Output artifact names under <base>.
const (
	genomeArtifact          = "adam_genome.json"
	landscapeReportArtifact = "landscape_report.json"
	evolutionReportArtifact = "evolution_report.json"
	viabilityReportArtifact = "viability_report.json"
)

// env holds the per-run wiring shared by all pipeline commands: the
// path resolver, loaded config, and logger. Each invocation builds its
// own env; nothing is shared across runs.
type env struct {
	res paths.Resolver
	cfg *config.Config
	log *slog.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	base, _ := cmd.Flags().GetString("base")

	res, err := paths.NewResolver(base)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(res.ConfigFile())
	if err != nil {
		return nil, err
	}
	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	return &env{res: res, cfg: cfg, log: log}, nil
}

// dataPath resolves an input file: the configured data dir if set,
// otherwise <base>/data.
func (e *env) dataPath(name string) string {
	if e.cfg.Data.Dir != "" {
		return filepath.Join(e.cfg.Data.Dir, name)
	}
	return e.res.Data(name)
}

// recordRun appends the run to the catalog when enabled. Catalog
// failures are fatal like every other pipeline error: a run either
// completes fully or not at all.
func (e *env) recordRun(ctx context.Context, run catalog.Run) error {
	if !e.cfg.Catalog.Enabled {
		return nil
	}

	dir, err := e.res.DotDir()
	if err != nil {
		return err
	}
	store, err := catalog.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordRun(ctx, run)
	if err != nil {
		return err
	}
	e.log.Debug("run recorded", "id", id, "mode", run.Mode)
	return nil
}

// openCatalog opens the run catalog for reading.
func (e *env) openCatalog() (*catalog.Store, error) {
	dir, err := e.res.DotDir()
	if err != nil {
		return nil, err
	}
	store, err := catalog.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open run catalog: %w", err)
	}
	return store, nil
}
