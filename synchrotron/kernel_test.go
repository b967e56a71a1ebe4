package synchrotron

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synchrotron/internal/testutil"
	"github.com/cwbudde/algo-synchrotron/quad"
)

func newTestKernel(t *testing.T, cutoff float64) *Kernel {
	t.Helper()

	params := DefaultKernelParams()
	params.InfinityCutoff = cutoff

	k, err := NewKernel(params, quad.DefaultConfig())
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}

	return k
}

func TestKernelReferenceValues(t *testing.T) {
	k := newTestKernel(t, 100)

	tests := []struct {
		x, want float64
	}{
		{0.001, 0.2131390650914},
		{0.01, 0.4449725041142},
		{0.1, 0.8181855348729},
		{1, 0.6514228153554},
		{5, 0.02124812977498},
		{20, 1.196863445610e-08},
	}
	for _, tt := range tests {
		got, err := k.F(tt.x)
		if err != nil {
			t.Fatalf("F(%v): %v", tt.x, err)
		}

		if rel := testutil.RelDiff(got, tt.want); rel > 1e-8 {
			t.Errorf("F(%v) = %.13g, want %.13g (rel %g)", tt.x, got, tt.want, rel)
		}
	}
}

func TestKernelSmallArgumentLimit(t *testing.T) {
	// F(x) → 4π / (√3 Γ(1/3)) (x/2)^(1/3) as x → 0.
	k := newTestKernel(t, 100)
	coeff := 4 * math.Pi / (math.Sqrt(3) * math.Gamma(1.0/3)) * math.Cbrt(0.5)

	x := 1e-9
	got, err := k.F(x)
	if err != nil {
		t.Fatal(err)
	}

	want := coeff * math.Cbrt(x)
	if rel := testutil.RelDiff(got, want); rel > 1e-4 {
		t.Fatalf("F(%g) = %g, want ≈ %g (rel %g)", x, got, want, rel)
	}
}

func TestKernelTinyArguments(t *testing.T) {
	k := newTestKernel(t, 100)
	coeff := 4 * math.Pi / (math.Sqrt(3) * math.Gamma(1.0/3)) * math.Cbrt(0.5)

	for _, x := range []float64{1e-150, 1e-200, 1e-300, 5e-324} {
		f, err := k.F(x)
		if err != nil {
			t.Fatalf("F(%g): %v", x, err)
		}

		want := coeff * math.Cbrt(x)
		if f <= 0 || testutil.RelDiff(f, want) > 1e-6 {
			t.Errorf("F(%g) = %g, want ≈ %g", x, f, want)
		}

		tail, err := k.Tail(x)
		if err != nil || math.IsInf(tail, 0) || tail <= 0 {
			t.Errorf("Tail(%g) = %v, %v; want finite and positive", x, tail, err)
		}
	}

	// Both sides of the switch to the leading term agree.
	below, err := k.F(math.Nextafter(smallArgument, 0))
	if err != nil {
		t.Fatal(err)
	}

	above, err := k.F(smallArgument)
	if err != nil {
		t.Fatal(err)
	}

	if rel := testutil.RelDiff(below, above); rel > 1e-6 {
		t.Fatalf("F jumps at %g: %g vs %g (rel %g)", smallArgument, below, above, rel)
	}
}

func TestKernelZeroAndCutoff(t *testing.T) {
	k := newTestKernel(t, 100)

	f0, err := k.F(0)
	if err != nil || f0 != 0 {
		t.Fatalf("F(0) = %v, %v; want 0, nil", f0, err)
	}

	tail0, err := k.Tail(0)
	if err != nil || !math.IsInf(tail0, 1) {
		t.Fatalf("Tail(0) = %v, %v; want +Inf, nil", tail0, err)
	}

	for _, x := range []float64{100, 150, math.Inf(1)} {
		got, err := k.F(x)
		if err != nil || got != 0 {
			t.Errorf("F(%v) = %v, %v; want 0, nil", x, got, err)
		}
	}
}

func TestKernelDomainError(t *testing.T) {
	k := newTestKernel(t, 100)

	for _, x := range []float64{-1e-12, -3, math.NaN()} {
		_, err := k.F(x)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("F(%v) err = %v, want ErrDomain", x, err)
		}

		_, err = k.Tail(x)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("Tail(%v) err = %v, want ErrDomain", x, err)
		}
	}
}

func TestKernelShape(t *testing.T) {
	k := newTestKernel(t, 100)

	var xs, tails, fs []float64
	for x := 1e-6; x < 120; x *= 1.25 {
		tail, err := k.Tail(x)
		if err != nil {
			t.Fatalf("Tail(%g): %v", x, err)
		}

		f, err := k.F(x)
		if err != nil {
			t.Fatalf("F(%g): %v", x, err)
		}

		xs = append(xs, x)
		tails = append(tails, tail)
		fs = append(fs, f)
	}

	testutil.RequireFinite(t, tails)
	testutil.RequireNonNegative(t, tails)
	testutil.RequireNonNegative(t, fs)
	testutil.RequireNonIncreasing(t, tails, 1e-9)

	peak := 0
	for i := range fs {
		if fs[i] > fs[peak] {
			peak = i
		}
	}

	if xs[peak] < 0.15 || xs[peak] > 0.5 || math.Abs(fs[peak]-0.918) > 0.005 {
		t.Fatalf("peak F(%g) = %g, want ≈ 0.918 near x = 0.29", xs[peak], fs[peak])
	}

	testutil.RequireNonIncreasing(t, fs[peak:], 1e-9)
}

func TestKernelCutoffInsensitive(t *testing.T) {
	k100 := newTestKernel(t, 100)
	k1000 := newTestKernel(t, 1000)

	for x := 0.1; x < 50; x *= 1.3 {
		a, err := k100.F(x)
		if err != nil {
			t.Fatal(err)
		}

		b, err := k1000.F(x)
		if err != nil {
			t.Fatal(err)
		}

		if rel := testutil.RelDiff(a, b); rel > 1e-6 {
			t.Fatalf("F(%g): cutoff 100 gives %g, cutoff 1000 gives %g (rel %g)", x, a, b, rel)
		}
	}
}

func TestKernelIntegral(t *testing.T) {
	// ∫_0^∞ F(x) dx = 8π / (9√3)
	k := newTestKernel(t, 100)
	want := 8 * math.Pi / (9 * math.Sqrt(3))

	var evalErr error

	f := func(u float64) float64 {
		x := math.Exp(u)

		v, err := k.F(x)
		if err != nil {
			evalErr = err
		}

		return v * x
	}

	res, err := quad.Integrate(f, math.Log(1e-10), math.Log(100), quad.WithMaxSubdivisions(200))
	if err != nil || evalErr != nil {
		t.Fatalf("Integrate: %v, %v", err, evalErr)
	}

	if rel := testutil.RelDiff(res.Value, want); rel > 1e-6 {
		t.Fatalf("∫F = %.10g, want %.10g", res.Value, want)
	}
}

func TestNewKernelRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*KernelParams)
	}{
		{"zero cutoff", func(p *KernelParams) { p.InfinityCutoff = 0 }},
		{"negative cutoff", func(p *KernelParams) { p.InfinityCutoff = -5 }},
		{"infinite cutoff", func(p *KernelParams) { p.InfinityCutoff = math.Inf(1) }},
		{"zero amplitude", func(p *KernelParams) { p.A = 0 }},
		{"nan C", func(p *KernelParams) { p.C = math.NaN() }},
		{"negative D", func(p *KernelParams) { p.D = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultKernelParams()
			tt.modify(&params)

			_, err := NewKernel(params, quad.DefaultConfig())
			if !errors.Is(err, ErrDomain) {
				t.Fatalf("err = %v, want ErrDomain", err)
			}
		})
	}
}

func TestKernelReportsQuadratureFailure(t *testing.T) {
	params := DefaultKernelParams()
	cfg := quad.Config{RelTol: 1e-17, MaxSubdivisions: 2}

	k, err := NewKernel(params, cfg)
	if err != nil {
		t.Fatal(err)
	}

	_, err = k.F(0.5)
	if !errors.Is(err, quad.ErrNoConvergence) {
		t.Fatalf("err = %v, want quad.ErrNoConvergence", err)
	}
}
