// Package config reads the synchspec TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is a
// pointer so an absent key can be told apart from a zero value.
type FileConfig struct {
	Population PopulationConfig `toml:"population"`
	Kernel     KernelConfig     `toml:"kernel"`
	Grid       GridConfig       `toml:"grid"`
	Quadrature QuadratureConfig `toml:"quadrature"`
	Run        RunConfig        `toml:"run"`
	Output     OutputConfig     `toml:"output"`
}

// PopulationConfig maps the electron population.
type PopulationConfig struct {
	P        *float64 `toml:"p"`
	GammaMin *float64 `toml:"gamma-min"`
	Gamma1   *float64 `toml:"gamma-1"`
	Gamma2   *float64 `toml:"gamma-2"`
}

// KernelConfig maps the single-electron constants.
type KernelConfig struct {
	A              *float64 `toml:"a"`
	C              *float64 `toml:"c"`
	D              *float64 `toml:"d"`
	InfinityCutoff *float64 `toml:"infinity-cutoff"`
}

// GridConfig maps the frequency grid.
type GridConfig struct {
	Lower   *float64 `toml:"lower"`
	Upper   *float64 `toml:"upper"`
	Points  *int     `toml:"points"`
	Spacing *string  `toml:"spacing"`
}

// QuadratureConfig maps the integration tolerances.
type QuadratureConfig struct {
	AbsTol          *float64 `toml:"abs-tol"`
	RelTol          *float64 `toml:"rel-tol"`
	MaxSubdivisions *int     `toml:"max-subdivisions"`
}

// RunConfig maps execution settings.
type RunConfig struct {
	Workers *int `toml:"workers"`
}

// OutputConfig maps artifact paths. Empty means not written.
type OutputConfig struct {
	PNG  *string `toml:"png"`
	PDF  *string `toml:"pdf"`
	XLSX *string `toml:"xlsx"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error. Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}

		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg FileConfig

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return cfg, nil
}

// WriteTemplate writes the commented default config to path unless a file
// already exists there. It reports whether a file was created.
func WriteTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}

	return true, nil
}

// Template is the commented default configuration. Every key is commented
// out, so loading it changes nothing.
const Template = `# synchspec configuration
# Command-line flags override these values.

[population]
# p = 2.5            # spectral index, > 1
# gamma-min = 1.0    # sharp low-energy cutoff of N(gamma)
# gamma-1 = 1.0      # lower bound of the energy integral
# gamma-2 = 2.0      # upper bound of the energy integral

[kernel]
# a = 1.0
# c = 1.0
# d = 1.0
# infinity-cutoff = 100.0   # upper limit standing in for infinity

[grid]
# lower = 0.0
# upper = 100.0     # excluded
# points = 500
# spacing = "linear"  # or "log" (needs lower > 0)

[quadrature]
# abs-tol = 0.0
# rel-tol = 1.49e-8
# max-subdivisions = 50

[run]
# workers = 1

[output]
# png = "spectrum.png"
# pdf = "spectrum.pdf"
# xlsx = "spectrum.xlsx"
`
