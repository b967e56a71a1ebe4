package synchrotron

import (
	"testing"

	"github.com/cwbudde/algo-synchrotron/quad"
)

func BenchmarkKernelF(b *testing.B) {
	k, err := NewKernel(DefaultKernelParams(), quad.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, _ = k.F(0.3)
	}
}

func BenchmarkSpectrumPtot(b *testing.B) {
	params := DefaultKernelParams()

	k, err := NewKernel(params, quad.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	e, err := NewEmitter(k, params)
	if err != nil {
		b.Fatal(err)
	}

	s, err := NewSpectrum(e, DefaultPopulation(), quad.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, _ = s.Ptot(0.4)
	}
}
