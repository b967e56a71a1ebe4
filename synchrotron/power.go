package synchrotron

import (
	"errors"
	"fmt"
	"math"
)

// Emitter gives the power radiated per unit frequency by one electron.
type Emitter struct {
	k *Kernel
	a float64
	d float64
}

// NewEmitter binds k to the amplitude and frequency scale of params.
func NewEmitter(k *Kernel, params KernelParams) (*Emitter, error) {
	if k == nil {
		return nil, errors.New("synchrotron: nil kernel")
	}

	err := params.Validate()
	if err != nil {
		return nil, err
	}

	return &Emitter{k: k, a: params.A, d: params.D}, nil
}

// Power returns P(w, γ) = A·F(w / (D γ²)).
func (e *Emitter) Power(w, gamma float64) (float64, error) {
	if math.IsNaN(w) || w < 0 {
		return 0, fmt.Errorf("%w: frequency w = %g, want >= 0", ErrDomain, w)
	}

	if !(gamma > 0) {
		return 0, fmt.Errorf("%w: gamma = %g, want > 0", ErrDomain, gamma)
	}

	f, err := e.k.F(w / (e.d * gamma * gamma))
	if err != nil {
		return 0, err
	}

	return e.a * f, nil
}
