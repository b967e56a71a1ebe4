package render

import (
	"fmt"

	"github.com/cwbudde/algo-synchrotron/sampling"
)

// Summary is the run description printed alongside the data.
type Summary struct {
	Config sampling.Config
	Peak   sampling.PeakRecord
	// LowSlope is the log-log slope of the spectrum well below the peak.
	LowSlope float64
	// Steepening reports whether the high-frequency tail falls faster
	// than a power law.
	Steepening bool
}

// row is one label/value pair of a parameter table.
type row struct {
	label string
	value string
}

// Rows returns the summary as label/value pairs in display order.
func (s Summary) Rows() [][2]string {
	rows := s.rows()
	out := make([][2]string, len(rows))

	for i, r := range rows {
		out[i] = [2]string{r.label, r.value}
	}

	return out
}

func (s Summary) rows() []row {
	c := s.Config

	return []row{
		{"spectral index p", g(c.Population.P)},
		{"γ_min", g(c.Population.GammaMin)},
		{"γ range", fmt.Sprintf("[%s, %s]", g(c.Population.Gamma1), g(c.Population.Gamma2))},
		{"A, C, D", fmt.Sprintf("%s, %s, %s", g(c.Kernel.A), g(c.Kernel.C), g(c.Kernel.D))},
		{"kernel cutoff", g(c.Kernel.InfinityCutoff)},
		{"grid", fmt.Sprintf("%d %s points on [%s, %s)", c.Grid.Count, c.Grid.Spacing, g(c.Grid.Lower), g(c.Grid.Upper))},
		{"quadrature", fmt.Sprintf("abs %s, rel %s, %d subdivisions",
			g(c.Quadrature.AbsTol), g(c.Quadrature.RelTol), c.Quadrature.MaxSubdivisions)},
		{"peak", fmt.Sprintf("Ptot(%s) = %s at index %d", g(s.Peak.W), g(s.Peak.Value), s.Peak.Index)},
		{"low-frequency slope", fmt.Sprintf("%.4f (ω^(1/3) gives 0.3333)", s.LowSlope)},
		{"high-frequency tail", tailLabel(s.Steepening)},
	}
}

func tailLabel(steep bool) string {
	if steep {
		return "steepens faster than any power law"
	}

	return "not steepening"
}

func g(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
