package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/universo-sim/cosmoscope/internal/dataset"
	"github.com/universo-sim/cosmoscope/internal/elite"
)

func landscapeTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.New(
		[]string{"mass_up_quark", "mass_down_quark", "fitness", "winning_gen"},
		map[string][]float64{
			"mass_up_quark":   {1.0e-30, 2.3e-30, 3.0e-30, 4.0e-30},
			"mass_down_quark": {2.0e-30, 4.1e-30, 5.0e-30, 6.0e-30},
			"fitness":         {0.10, 0.93, 0.40, 0.70},
			"winning_gen":     {1, 1, 1, 1},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestBuildLandscape(t *testing.T) {
	filtered := landscapeTable(t)
	eliteSet := elite.TopK(filtered, "fitness", 2)

	r, err := BuildLandscape(filtered, eliteSet, 10, 1)
	if err != nil {
		t.Fatalf("BuildLandscape() error = %v", err)
	}

	if r.RowsTotal != 10 || r.RowsKept != 4 || r.TargetGeneration != 1 {
		t.Errorf("counts wrong: %+v", r)
	}
	if r.Best.Fitness != 0.93 || r.Best.MassUpQuark != 2.3e-30 {
		t.Errorf("best point wrong: %+v", r.Best)
	}
	if r.GlobalRange != (Range{Min: 0.10, Max: 0.93}) {
		t.Errorf("global range = %+v", r.GlobalRange)
	}
	// Elite range comes from the subset, not the full table
	if r.EliteRange != (Range{Min: 0.70, Max: 0.93}) {
		t.Errorf("elite range = %+v", r.EliteRange)
	}
	if len(r.Elite) != 2 || r.Elite[0].Fitness != 0.93 {
		t.Errorf("elite points wrong: %+v", r.Elite)
	}
}

func TestBuildEvolution(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"generation", "best_fitness", "deuterium_energy", "stable_lepton_gen"},
		map[string][]float64{
			"generation":        {0, 1, 2, 3},
			"best_fitness":      {0.12, 0.85, 0.55, 0.81},
			"deuterium_energy":  {1.9, 2.1, 2.0, 2.2},
			"stable_lepton_gen": {1, 1, 2, 1},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	r, err := BuildEvolution(tbl)
	if err != nil {
		t.Fatalf("BuildEvolution() error = %v", err)
	}
	if r.Generations != 4 {
		t.Errorf("Generations = %d, want 4", r.Generations)
	}
	if r.FinalBestFitness != 0.81 || r.PeakBestFitness != 0.85 {
		t.Errorf("fitness summary wrong: %+v", r)
	}
	if r.DominantGenCounts["1"] != 3 || r.DominantGenCounts["2"] != 1 {
		t.Errorf("dominant generation counts wrong: %v", r.DominantGenCounts)
	}
	if r.FinalDeuteriumMeV != 2.2 {
		t.Errorf("FinalDeuteriumMeV = %v, want 2.2", r.FinalDeuteriumMeV)
	}
	if len(r.Trajectory) != 4 || r.Trajectory[3].Generation != 3 {
		t.Errorf("trajectory wrong: %+v", r.Trajectory)
	}
}

func TestBuildViability(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"alpha", "fitness"},
		map[string][]float64{
			"alpha":   {0.002, 0.0073, 0.011},
			"fitness": {0.1, 0.9, 0.3},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	r, err := BuildViability(tbl)
	if err != nil {
		t.Fatalf("BuildViability() error = %v", err)
	}
	if r.Rows != 3 || r.BestAlpha != 0.0073 || r.BestFitness != 0.9 {
		t.Errorf("viability summary wrong: %+v", r)
	}
	if r.ObservedAlpha != ObservedAlpha {
		t.Errorf("ObservedAlpha = %v", r.ObservedAlpha)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landscape_report.json")

	filtered := landscapeTable(t)
	r, err := BuildLandscape(filtered, elite.TopK(filtered, "fitness", 2), 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(path, r); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Landscape
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if back.Best.Fitness != 0.93 {
		t.Errorf("round trip lost best point: %+v", back.Best)
	}
}
