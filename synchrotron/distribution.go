package synchrotron

import "math"

// PowerLaw is the electron density N(γ) = γ^(-P) with a sharp cutoff below
// GammaMin.
type PowerLaw struct {
	P        float64
	GammaMin float64
}

// N returns the number of electrons per unit energy at gamma.
func (d PowerLaw) N(gamma float64) float64 {
	if gamma < d.GammaMin {
		return 0
	}

	return math.Pow(gamma, -d.P)
}
