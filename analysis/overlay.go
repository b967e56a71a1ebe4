package analysis

import (
	"fmt"
	"math"
)

// Curve is a named reference curve sampled on a frequency grid.
type Curve struct {
	Name   string
	Values []float64
}

// Overlays returns the asymptotic shapes a synchrotron spectrum is compared
// against: ω^(1/3) below the peak, ω^(-(p-1)/2) for the power-law segment
// and e^(-ω) above. Each curve is scaled to 1 at peakW so it can be drawn
// over a spectrum normalized to a unit peak. Values at ω = 0 follow the
// formulas and may be 0 or +Inf.
func Overlays(w []float64, p, peakW float64) ([]Curve, error) {
	if !(peakW > 0) || math.IsInf(peakW, 0) {
		return nil, fmt.Errorf("analysis: peak frequency %g, want > 0", peakW)
	}

	index := -(p - 1) / 2
	curves := []Curve{
		{Name: "ω^(1/3)", Values: make([]float64, len(w))},
		{Name: fmt.Sprintf("ω^(%.3g)", index), Values: make([]float64, len(w))},
		{Name: "e^(-ω)", Values: make([]float64, len(w))},
	}

	for i, x := range w {
		curves[0].Values[i] = math.Cbrt(x / peakW)
		curves[1].Values[i] = math.Pow(x/peakW, index)
		curves[2].Values[i] = math.Exp(peakW - x)
	}

	return curves, nil
}
