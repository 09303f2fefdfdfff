package dataset

// Mode identifies which simulator artifact is being analyzed and which
// columns it must carry.
type Mode string

const (
	// ModeLandscape is the per-universe landscape table (map mode output).
	ModeLandscape Mode = "landscape"

	// ModeReseed is the landscape table read for genome reconstruction;
	// it additionally needs every evolved quark-mass dimension.
	ModeReseed Mode = "reseed"

	// ModeEvolution is the per-generation evolution log.
	ModeEvolution Mode = "evolution"

	// ModeViability is the alpha-vs-fitness viability table.
	ModeViability Mode = "viability"
)

// QuarkColumns are the six evolved quark-mass dimensions, the only part
// of a genome the simulator persists per record.
var QuarkColumns = []string{
	"mass_up_quark",
	"mass_down_quark",
	"mass_strange_quark",
	"mass_charm_quark",
	"mass_bottom_quark",
	"mass_top_quark",
}

// RequiredColumns returns the columns an input file must carry for the mode.
func (m Mode) RequiredColumns() []string {
	switch m {
	case ModeLandscape:
		return []string{"mass_up_quark", "mass_down_quark", "fitness", "winning_gen"}
	case ModeReseed:
		cols := []string{"fitness", "winning_gen"}
		return append(cols, QuarkColumns...)
	case ModeEvolution:
		return []string{"generation", "best_fitness", "deuterium_energy", "stable_lepton_gen"}
	case ModeViability:
		return []string{"alpha", "fitness"}
	}
	return nil
}

// FitnessColumn returns the fitness column name for the mode.
func (m Mode) FitnessColumn() string {
	if m == ModeEvolution {
		return "best_fitness"
	}
	return "fitness"
}

// GenerationColumn returns the dominant-generation tag column for the
// mode, or "" when the mode has no generation filter.
func (m Mode) GenerationColumn() string {
	switch m {
	case ModeLandscape, ModeReseed:
		return "winning_gen"
	case ModeEvolution:
		return "stable_lepton_gen"
	}
	return ""
}
