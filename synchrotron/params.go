package synchrotron

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned for arguments or parameters outside the physical
// domain of a computation.
var ErrDomain = errors.New("synchrotron: argument out of domain")

// Population describes a power-law electron population.
type Population struct {
	P        float64 // spectral index, > 1
	GammaMin float64 // sharp low-energy cutoff of N(γ)
	Gamma1   float64 // lower integration bound of Ptot
	Gamma2   float64 // upper integration bound of Ptot
}

// DefaultPopulation returns p = 2.5, γ_min = 1 integrated over γ ∈ [1, 2].
func DefaultPopulation() Population {
	return Population{P: 2.5, GammaMin: 1, Gamma1: 1, Gamma2: 2}
}

// Validate reports whether every field is in domain and the integration
// range is ordered. All failures wrap ErrDomain.
func (p Population) Validate() error {
	err := p.validateValues()
	if err != nil {
		return err
	}

	if p.Gamma1 >= p.Gamma2 {
		return fmt.Errorf("%w: gamma-1 %g must be less than gamma-2 %g", ErrDomain, p.Gamma1, p.Gamma2)
	}

	return nil
}

// validateValues checks each field on its own, leaving the bounds unordered.
func (p Population) validateValues() error {
	if !finite(p.P) || p.P <= 1 {
		return fmt.Errorf("%w: spectral index p = %g, want > 1", ErrDomain, p.P)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"gamma-min", p.GammaMin},
		{"gamma-1", p.Gamma1},
		{"gamma-2", p.Gamma2},
	} {
		if !finite(f.v) || f.v <= 0 {
			return fmt.Errorf("%w: %s = %g, want > 0", ErrDomain, f.name, f.v)
		}
	}

	return nil
}

// Distribution returns the electron density N(γ) of the population.
func (p Population) Distribution() PowerLaw {
	return PowerLaw{P: p.P, GammaMin: p.GammaMin}
}

// KernelParams holds the dimensionless constants of the single-electron
// power law.
type KernelParams struct {
	A float64 // amplitude of P(w, γ)
	// C is carried for completeness with the textbook constants. No
	// formula uses it.
	C              float64
	D              float64 // frequency scale, x = w / (D γ²)
	InfinityCutoff float64 // finite stand-in for ∞ in the kernel integral
}

// DefaultKernelParams returns A = C = D = 1 with the cutoff at 100.
func DefaultKernelParams() KernelParams {
	return KernelParams{A: 1, C: 1, D: 1, InfinityCutoff: 100}
}

// Validate reports whether the constants are usable. All failures wrap
// ErrDomain.
func (k KernelParams) Validate() error {
	switch {
	case !finite(k.A) || k.A <= 0:
		return fmt.Errorf("%w: A = %g, want > 0", ErrDomain, k.A)
	case !finite(k.C):
		return fmt.Errorf("%w: C = %g, want finite", ErrDomain, k.C)
	case !finite(k.D) || k.D <= 0:
		return fmt.Errorf("%w: D = %g, want > 0", ErrDomain, k.D)
	case !finite(k.InfinityCutoff) || k.InfinityCutoff <= 0:
		return fmt.Errorf("%w: infinity cutoff = %g, want > 0", ErrDomain, k.InfinityCutoff)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
