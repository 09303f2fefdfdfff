// Package report builds the chart-ready summaries handed to the
// external plotting layer. Rendering (axes, colormaps, tooltips) stays
// outside this repository; these artifacts carry the numbers a chart
// needs: counts, ranges, the best point, and the elite subset.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/universo-sim/cosmoscope/internal/dataset"
	"github.com/universo-sim/cosmoscope/internal/elite"
)

// ObservedAlpha is the fine-structure constant of our universe, drawn
// as a reference line on the viability chart.
const ObservedAlpha = 1.0 / 137.036

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LandscapePoint is one universe in the quark-mass plane.
type LandscapePoint struct {
	MassUpQuark   float64 `json:"mass_up_quark"`
	MassDownQuark float64 `json:"mass_down_quark"`
	Fitness       float64 `json:"fitness"`
}

// Landscape summarizes a generation-filtered landscape table. The elite
// subset carries its own fitness range: the zoomed elite view is scaled
// by it, not by the global range.
type Landscape struct {
	TargetGeneration int              `json:"target_generation"`
	RowsTotal        int              `json:"rows_total"`
	RowsKept         int              `json:"rows_kept"`
	GlobalRange      Range            `json:"global_fitness_range"`
	EliteRange       Range            `json:"elite_fitness_range"`
	Best             LandscapePoint   `json:"best"`
	Elite            []LandscapePoint `json:"elite"`
}

// BuildLandscape builds the landscape summary from the filtered table
// and its elite subset. rowsTotal is the unfiltered row count.
func BuildLandscape(filtered, eliteSet *dataset.Table, rowsTotal, targetGen int) (*Landscape, error) {
	bestRow, err := elite.Best(filtered, "fitness")
	if err != nil {
		return nil, err
	}

	gMin, gMax := elite.Range(filtered, "fitness")
	eMin, eMax := elite.Range(eliteSet, "fitness")

	points := make([]LandscapePoint, eliteSet.Len())
	for i := range points {
		points[i] = landscapePoint(eliteSet, i)
	}

	return &Landscape{
		TargetGeneration: targetGen,
		RowsTotal:        rowsTotal,
		RowsKept:         filtered.Len(),
		GlobalRange:      Range{Min: gMin, Max: gMax},
		EliteRange:       Range{Min: eMin, Max: eMax},
		Best:             landscapePoint(filtered, bestRow),
		Elite:            points,
	}, nil
}

func landscapePoint(t *dataset.Table, row int) LandscapePoint {
	return LandscapePoint{
		MassUpQuark:   t.Value("mass_up_quark", row),
		MassDownQuark: t.Value("mass_down_quark", row),
		Fitness:       t.Value("fitness", row),
	}
}

// EvolutionPoint is one generation of the evolution log.
type EvolutionPoint struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
}

// Evolution summarizes the per-generation evolution log: the fitness
// trajectory and how often each particle generation dominated the
// resulting chemistry (0 means extinct).
type Evolution struct {
	Generations       int              `json:"generations"`
	FinalBestFitness  float64          `json:"final_best_fitness"`
	PeakBestFitness   float64          `json:"peak_best_fitness"`
	DominantGenCounts map[string]int   `json:"dominant_generation_counts"`
	Trajectory        []EvolutionPoint `json:"trajectory"`
	FinalDeuteriumMeV float64          `json:"final_deuterium_energy_mev"`
}

// BuildEvolution builds the evolution summary from the full log table.
func BuildEvolution(t *dataset.Table) (*Evolution, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("evolution log has no rows")
	}

	_, peak := elite.Range(t, "best_fitness")
	last := t.Len() - 1

	counts := make(map[string]int)
	trajectory := make([]EvolutionPoint, t.Len())
	for i := 0; i < t.Len(); i++ {
		counts[strconv.Itoa(t.Int("stable_lepton_gen", i))]++
		trajectory[i] = EvolutionPoint{
			Generation:  t.Int("generation", i),
			BestFitness: t.Value("best_fitness", i),
		}
	}

	return &Evolution{
		Generations:       t.Len(),
		FinalBestFitness:  t.Value("best_fitness", last),
		PeakBestFitness:   peak,
		DominantGenCounts: counts,
		Trajectory:        trajectory,
		FinalDeuteriumMeV: t.Value("deuterium_energy", last),
	}, nil
}

// Viability summarizes the alpha-vs-fitness table.
type Viability struct {
	Rows          int     `json:"rows"`
	AlphaRange    Range   `json:"alpha_range"`
	FitnessRange  Range   `json:"fitness_range"`
	ObservedAlpha float64 `json:"observed_alpha"`
	BestAlpha     float64 `json:"best_alpha"`
	BestFitness   float64 `json:"best_fitness"`
}

// BuildViability builds the viability summary.
func BuildViability(t *dataset.Table) (*Viability, error) {
	bestRow, err := elite.Best(t, "fitness")
	if err != nil {
		return nil, err
	}

	aMin, aMax := elite.Range(t, "alpha")
	fMin, fMax := elite.Range(t, "fitness")

	return &Viability{
		Rows:          t.Len(),
		AlphaRange:    Range{Min: aMin, Max: aMax},
		FitnessRange:  Range{Min: fMin, Max: fMax},
		ObservedAlpha: ObservedAlpha,
		BestAlpha:     t.Value("alpha", bestRow),
		BestFitness:   t.Value("fitness", bestRow),
	}, nil
}

// WriteJSON writes any report as indented JSON at path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
