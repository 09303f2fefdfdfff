// Package genome reconstructs complete simulator parameter vectors from
// selected simulation records and exports them as reseed input.
package genome

import (
	"fmt"

	"github.com/universo-sim/cosmoscope/internal/dataset"
)

// Genome is the full parameter vector the simulator consumes as a
// configuration seed. Field names in the JSON artifact must match the
// simulator's CosmicLaw input keys exactly.
type Genome struct {
	G            float64 `json:"G"`
	E            float64 `json:"e"`
	AlphaS       float64 `json:"alpha_s"`
	AlphaW       float64 `json:"alpha_w"`
	MassElectron float64 `json:"mass_electron"`
	MassMuon     float64 `json:"mass_muon"`
	MassTauon    float64 `json:"mass_tauon"`

	MassUpQuark      float64 `json:"mass_up_quark"`
	MassDownQuark    float64 `json:"mass_down_quark"`
	MassStrangeQuark float64 `json:"mass_strange_quark"`
	MassCharmQuark   float64 `json:"mass_charm_quark"`
	MassBottomQuark  float64 `json:"mass_bottom_quark"`
	MassTopQuark     float64 `json:"mass_top_quark"`
}

// QuarkMasses holds the six evolved dimensions of a record, the only
// genome fields the simulator persists in its result tables.
type QuarkMasses struct {
	Up      float64
	Down    float64
	Strange float64
	Charm   float64
	Bottom  float64
	Top     float64
}

// Defaults returns the fixed constant table for the non-evolved genome
// fields. The simulator's export format never persisted these
// dimensions, so every reconstructed genome carries the same standard
// placeholder values regardless of which record produced it — a genome
// rebuilt here only partially reproduces the original individual.
func Defaults() Genome {
	return Genome{
		G:            6.67430e-11,
		E:            1.60217663e-19,
		AlphaS:       1.0,
		AlphaW:       1.0e-6,
		MassElectron: 9.10938356e-31,
		MassMuon:     1.883531594e-28,
		MassTauon:    3.16754e-27,
	}
}

// Reconstruct merges a record's evolved quark masses with the fixed
// defaults into a complete genome. Every field of the result is always
// populated: the six quark masses are copied exactly, everything else
// comes from Defaults.
func Reconstruct(q QuarkMasses) Genome {
	g := Defaults()
	g.MassUpQuark = q.Up
	g.MassDownQuark = q.Down
	g.MassStrangeQuark = q.Strange
	g.MassCharmQuark = q.Charm
	g.MassBottomQuark = q.Bottom
	g.MassTopQuark = q.Top
	return g
}

// QuarksFromRecord extracts the six quark-mass fields of one table row.
func QuarksFromRecord(t *dataset.Table, row int) (QuarkMasses, error) {
	for _, col := range dataset.QuarkColumns {
		if !t.HasColumn(col) {
			return QuarkMasses{}, fmt.Errorf("record has no %q column", col)
		}
	}
	return QuarkMasses{
		Up:      t.Value("mass_up_quark", row),
		Down:    t.Value("mass_down_quark", row),
		Strange: t.Value("mass_strange_quark", row),
		Charm:   t.Value("mass_charm_quark", row),
		Bottom:  t.Value("mass_bottom_quark", row),
		Top:     t.Value("mass_top_quark", row),
	}, nil
}
