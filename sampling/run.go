package sampling

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synchrotron/quad"
	"github.com/cwbudde/algo-synchrotron/synchrotron"
)

// Config is the complete description of one spectrum computation.
type Config struct {
	Population synchrotron.Population
	Kernel     synchrotron.KernelParams
	Grid       Grid
	Quadrature quad.Config
	// Workers is the number of grid points evaluated at once. 0 and 1
	// select the sequential scan; negative values are rejected.
	Workers int
}

// DefaultConfig returns the reference scenario: p = 2.5, γ_min = 1,
// γ ∈ [1, 2], A = C = D = 1, kernel cutoff 100 and 500 points on [0, 100).
func DefaultConfig() Config {
	return Config{
		Population: synchrotron.DefaultPopulation(),
		Kernel:     synchrotron.DefaultKernelParams(),
		Grid:       DefaultGrid(),
		Quadrature: quad.DefaultConfig(),
		Workers:    1,
	}
}

// Validate checks every parameter before any integration starts.
func (c Config) Validate() error {
	err := c.Population.Validate()
	if err != nil {
		return err
	}

	err = c.Kernel.Validate()
	if err != nil {
		return err
	}

	err = c.Grid.Validate()
	if err != nil {
		return err
	}

	q := c.Quadrature
	if q.AbsTol < 0 || q.RelTol < 0 || (q.AbsTol == 0 && q.RelTol == 0) || q.MaxSubdivisions <= 0 {
		return fmt.Errorf("%w: %+v", quad.ErrInvalidTolerance, q)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers = %d, want >= 0", synchrotron.ErrDomain, c.Workers)
	}

	return nil
}

// Output is the product of Run. Grid, Distribution, Raw and Normalized are
// index aligned.
type Output struct {
	Grid         []float64
	Distribution []float64
	Raw          []float64
	Normalized   []float64
	Peak         PeakRecord
}

// Run validates cfg, samples the spectrum over cfg.Grid and normalizes it to
// a unit peak. opts are applied after cfg.Workers.
func Run(ctx context.Context, cfg Config, opts ...Option) (Output, error) {
	err := cfg.Validate()
	if err != nil {
		return Output{}, err
	}

	spec, err := Build(cfg)
	if err != nil {
		return Output{}, err
	}

	engine := NewEngine(spec, cfg.Population.Distribution(), append([]Option{WithWorkers(cfg.Workers)}, opts...)...)

	res, err := engine.Sample(ctx, cfg.Grid)
	if err != nil {
		return Output{}, err
	}

	norm, err := Normalize(res.Raw)
	if err != nil {
		return Output{}, fmt.Errorf("sampling: %d grid points, peak %g at w = %g: %w",
			len(res.Raw), res.Peak.Value, res.Peak.W, err)
	}

	if math.Abs(norm[res.Peak.Index]-1) > 1e-12 {
		return Output{}, errors.New("sampling: normalization divisor disagrees with peak record")
	}

	return Output{
		Grid:         res.Grid,
		Distribution: res.Distribution,
		Raw:          res.Raw,
		Normalized:   norm,
		Peak:         res.Peak,
	}, nil
}

// Build assembles the kernel, emitter and spectrum described by cfg.
func Build(cfg Config) (*synchrotron.Spectrum, error) {
	k, err := synchrotron.NewKernel(cfg.Kernel, cfg.Quadrature)
	if err != nil {
		return nil, err
	}

	e, err := synchrotron.NewEmitter(k, cfg.Kernel)
	if err != nil {
		return nil, err
	}

	return synchrotron.NewSpectrum(e, cfg.Population, cfg.Quadrature)
}
