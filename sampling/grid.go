package sampling

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synchrotron/synchrotron"
	"gonum.org/v1/gonum/floats"
)

// Spacing selects how grid points are distributed between the bounds.
type Spacing int

const (
	// Linear places points at equal frequency steps.
	Linear Spacing = iota
	// Log places points at equal frequency ratios. Lower must be positive.
	Log
)

// String returns the config-file name of the spacing.
func (s Spacing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing is the inverse of Spacing.String.
func ParseSpacing(name string) (Spacing, error) {
	switch name {
	case "", "linear":
		return Linear, nil
	case "log":
		return Log, nil
	default:
		return Linear, fmt.Errorf("sampling: unknown spacing %q", name)
	}
}

// Grid is a finite, ordered set of frequencies in [Lower, Upper). The upper
// bound is never sampled.
type Grid struct {
	Lower   float64
	Upper   float64
	Count   int
	Spacing Spacing
}

// DefaultGrid returns 500 linearly spaced points on [0, 100).
func DefaultGrid() Grid {
	return Grid{Lower: 0, Upper: 100, Count: 500, Spacing: Linear}
}

// Validate reports grid parameters that cannot produce a strictly
// increasing set of non-negative frequencies. Failures wrap
// synchrotron.ErrDomain.
func (g Grid) Validate() error {
	switch {
	case math.IsNaN(g.Lower) || g.Lower < 0 || math.IsInf(g.Lower, 0):
		return fmt.Errorf("%w: grid lower bound %g, want finite and >= 0", synchrotron.ErrDomain, g.Lower)
	case math.IsNaN(g.Upper) || math.IsInf(g.Upper, 0) || g.Upper <= g.Lower:
		return fmt.Errorf("%w: grid upper bound %g, want finite and > %g", synchrotron.ErrDomain, g.Upper, g.Lower)
	case g.Count <= 0:
		return fmt.Errorf("%w: grid count %d, want > 0", synchrotron.ErrDomain, g.Count)
	case g.Spacing == Log && g.Lower == 0:
		return fmt.Errorf("%w: log grid needs a positive lower bound", synchrotron.ErrDomain)
	case g.Spacing != Linear && g.Spacing != Log:
		return fmt.Errorf("%w: unknown grid spacing %v", synchrotron.ErrDomain, g.Spacing)
	}

	return nil
}

// Points returns the Count grid frequencies in ascending order. Linear
// grids follow Lower + i(Upper-Lower)/Count. Points is the only place grid
// values are computed; every consumer uses its result.
func (g Grid) Points() ([]float64, error) {
	err := g.Validate()
	if err != nil {
		return nil, err
	}

	// Span includes both ends, so span Count intervals and drop the upper
	// bound.
	pts := make([]float64, g.Count+1)

	switch g.Spacing {
	case Log:
		floats.LogSpan(pts, g.Lower, g.Upper)
	default:
		floats.Span(pts, g.Lower, g.Upper)
	}

	return pts[:g.Count], nil
}
