// Package paths resolves the pipeline's input and output locations.
// All files live under a single base directory so the tool behaves the
// same regardless of the caller's working directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DotDirName is the hidden directory under the base dir holding the
// run catalog and other tool-managed state.
const DotDirName = ".cosmoscope"

// ExecutableDir returns the directory containing the running binary.
// This is the default base directory: the analysis layer is deployed
// next to the simulator's data/ directory, not run from it.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Resolver maps artifact names to absolute paths under a base directory.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver rooted at base. If base is empty the
// executable's directory is used.
func NewResolver(base string) (Resolver, error) {
	if base == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return Resolver{}, err
		}
		base = dir
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return Resolver{}, fmt.Errorf("failed to resolve base directory %q: %w", base, err)
	}
	return Resolver{base: abs}, nil
}

// Base returns the absolute base directory.
func (r Resolver) Base() string { return r.base }

// Data returns the path of an input file under <base>/data.
func (r Resolver) Data(name string) string {
	return filepath.Join(r.base, "data", name)
}

// Output returns the path of an output artifact under the base directory.
func (r Resolver) Output(name string) string {
	return filepath.Join(r.base, name)
}

// DotDir returns <base>/.cosmoscope, creating it if needed.
func (r Resolver) DotDir() (string, error) {
	dir := filepath.Join(r.base, DotDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", DotDirName, err)
	}
	return dir, nil
}

// ConfigFile returns the path of the YAML config file under the base directory.
func (r Resolver) ConfigFile() string {
	return filepath.Join(r.base, "cosmoscope.yaml")
}
