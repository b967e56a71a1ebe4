package analysis

import (
	"errors"
	"math"
	"testing"
)

func powers(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}

	return out
}

func TestLogLogSlope(t *testing.T) {
	xs := []float64{1e-4, 1e-3, 1e-2, 1e-1}

	tests := []struct {
		name string
		f    func(float64) float64
		want float64
	}{
		{"cube root", math.Cbrt, 1.0 / 3},
		{"inverse", func(x float64) float64 { return 4 / x }, -1},
		{"spectral index 2.5", func(x float64) float64 { return math.Pow(x, -0.75) }, -0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LogLogSlope(xs, powers(xs, tt.f))
			if err != nil {
				t.Fatal(err)
			}

			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("slope = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogLogSlopeSkipsNonPositive(t *testing.T) {
	xs := []float64{0, 1, 2, 4, 8}
	ys := []float64{0, 1, 4, 16, -1}

	got, err := LogLogSlope(xs, ys)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-2) > 1e-12 {
		t.Fatalf("slope = %v, want 2", got)
	}
}

func TestLogLogSlopeErrors(t *testing.T) {
	_, err := LogLogSlope([]float64{0, 1}, []float64{1, 1})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("err = %v, want ErrTooFewPoints", err)
	}

	if _, err := LogLogSlope([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestLocalSlopes(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{1, 2, 16, 128}

	got, err := LocalSlopes(xs, ys)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1, 3, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("slopes = %v, want %v", got, want)
		}
	}
}

func TestSteepening(t *testing.T) {
	xs := []float64{10, 20, 40, 80}

	tests := []struct {
		name string
		f    func(float64) float64
		want bool
	}{
		{"exponential", func(x float64) float64 { return math.Exp(-x) }, true},
		{"power law", func(x float64) float64 { return math.Pow(x, -3) }, false},
		{"flattening", func(x float64) float64 { return 1 / math.Log(x) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Steepening(xs, powers(xs, tt.f))
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Fatalf("Steepening = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Steepening([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("err = %v, want ErrTooFewPoints", err)
	}
}

func TestOverlaysPassThroughPeak(t *testing.T) {
	w := []float64{0, 0.2, 0.4, 0.8, 5}

	curves, err := Overlays(w, 2.5, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}

	for _, c := range curves {
		if math.Abs(c.Values[2]-1) > 1e-15 {
			t.Errorf("%s at peak = %v, want 1", c.Name, c.Values[2])
		}
	}

	if curves[0].Values[0] != 0 || !math.IsInf(curves[1].Values[0], 1) {
		t.Errorf("values at ω = 0: %v, %v", curves[0].Values[0], curves[1].Values[0])
	}

	if math.Abs(curves[1].Values[3]-math.Pow(2, -0.75)) > 1e-15 {
		t.Errorf("power-law curve at 2·peak = %v, want 2^-0.75", curves[1].Values[3])
	}

	if _, err := Overlays(w, 2.5, 0); err == nil {
		t.Error("expected error for zero peak frequency")
	}
}
