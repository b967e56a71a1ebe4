package synchrotron

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synchrotron/quad"
)

// Spectrum integrates the single-electron power over a population.
type Spectrum struct {
	e    *Emitter
	dist PowerLaw
	lo   float64
	hi   float64
	q    *quad.Integrator
}

// NewSpectrum returns the spectrum of pop radiated through e. The fields of
// pop must be in domain individually; an empty or inverted energy range is
// accepted and yields a spectrum that is zero everywhere.
func NewSpectrum(e *Emitter, pop Population, q quad.Config) (*Spectrum, error) {
	if e == nil {
		return nil, errors.New("synchrotron: nil emitter")
	}

	err := pop.validateValues()
	if err != nil {
		return nil, err
	}

	return &Spectrum{
		e:    e,
		dist: pop.Distribution(),
		// N vanishes below γ_min, so the integral starts there at the
		// earliest and the integrand has no jump inside the range.
		lo: math.Max(pop.Gamma1, pop.GammaMin),
		hi: pop.Gamma2,
		q:  quad.New(quad.WithConfig(q)),
	}, nil
}

// Range returns the energy interval actually integrated. It is empty when
// lo >= hi.
func (s *Spectrum) Range() (lo, hi float64) {
	return s.lo, s.hi
}

// N returns the electron density of the population.
func (s *Spectrum) N(gamma float64) float64 {
	return s.dist.N(gamma)
}

// Ptot returns ∫ P(w, γ) N(γ) dγ over the population's energy range.
func (s *Spectrum) Ptot(w float64) (float64, error) {
	if math.IsNaN(w) || w < 0 {
		return 0, fmt.Errorf("%w: frequency w = %g, want >= 0", ErrDomain, w)
	}

	if s.lo >= s.hi {
		return 0, nil
	}

	var evalErr error

	integrand := func(gamma float64) float64 {
		if evalErr != nil {
			return 0
		}

		p, err := s.e.Power(w, gamma)
		if err != nil {
			evalErr = err
			return 0
		}

		return p * s.dist.N(gamma)
	}

	res, err := s.q.Integrate(integrand, s.lo, s.hi)
	if evalErr != nil {
		return 0, fmt.Errorf("synchrotron: Ptot(%g): %w", w, evalErr)
	}

	if err != nil {
		return 0, fmt.Errorf("synchrotron: Ptot(%g): %w", w, err)
	}

	return math.Max(res.Value, 0), nil
}
