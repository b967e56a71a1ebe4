package synchrotron

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synchrotron/quad"
	"github.com/cwbudde/algo-synchrotron/special"
)

const (
	// kernelOrder is the Bessel order of the synchrotron kernel.
	kernelOrder = 5.0 / 3.0
	// Below smallArgument F is replaced by its leading term. The
	// log-space integrand overflows near x ≈ 1e-185.
	smallArgument = 1e-100
)

// smallArgumentCoeff is the factor c in F(x) ≈ c x^(1/3), from
// F(x) ≈ 4π/(√3 Γ(1/3)) (x/2)^(1/3).
var smallArgumentCoeff = 4 * math.Pi / (math.Sqrt(3) * math.Gamma(1.0/3)) * math.Cbrt(0.5)

// Kernel evaluates the synchrotron function F(x) = x ∫ₓ^∞ K_{5/3}(y) dy with
// the upper limit truncated at a finite cutoff.
type Kernel struct {
	cutoff    float64
	logCutoff float64
	q         *quad.Integrator
}

// NewKernel returns a Kernel truncated at params.InfinityCutoff that
// integrates with the settings in q.
func NewKernel(params KernelParams, q quad.Config) (*Kernel, error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}

	return &Kernel{
		cutoff:    params.InfinityCutoff,
		logCutoff: math.Log(params.InfinityCutoff),
		q:         quad.New(quad.WithConfig(q)),
	}, nil
}

// Cutoff returns the finite upper limit of the kernel integral.
func (k *Kernel) Cutoff() float64 {
	return k.cutoff
}

// Tail returns ∫ₓ^cutoff K_{5/3}(y) dy.
//
// The integral runs in u = ln y, where the y^(-5/3) growth of the Bessel
// function near zero turns into the smooth decay of K_{5/3}(eᵘ)eᵘ. Tail(0)
// diverges and is reported as +Inf. Tail is zero for x >= cutoff.
func (k *Kernel) Tail(x float64) (float64, error) {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0, fmt.Errorf("%w: kernel argument x = %g, want >= 0", ErrDomain, x)
	case x == 0:
		return math.Inf(1), nil
	case x >= k.cutoff:
		return 0, nil
	case x < smallArgument:
		return smallArgumentF(x) / x, nil
	}

	res, err := k.q.Integrate(logBesselIntegrand, math.Log(x), k.logCutoff)
	if err != nil {
		return 0, fmt.Errorf("synchrotron: kernel tail at x = %g: %w", x, err)
	}

	// Rounding in the rule can leave a tiny negative value where the
	// integrand has underflowed.
	return math.Max(res.Value, 0), nil
}

// F returns x·Tail(x). F(0) is the limit 0 of F(x) ~ x^(1/3) and is returned
// without integrating, as is 0 for x >= cutoff.
func (k *Kernel) F(x float64) (float64, error) {
	switch {
	case x == 0 || x >= k.cutoff:
		return 0, nil
	case x > 0 && x < smallArgument:
		return smallArgumentF(x), nil
	}

	tail, err := k.Tail(x)
	if err != nil {
		return 0, err
	}

	return x * tail, nil
}

func smallArgumentF(x float64) float64 {
	return smallArgumentCoeff * math.Cbrt(x)
}

func logBesselIntegrand(u float64) float64 {
	y := math.Exp(u)
	return special.BesselK(kernelOrder, y) * y
}
