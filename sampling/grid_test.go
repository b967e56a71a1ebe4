package sampling

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synchrotron/internal/testutil"
	"github.com/cwbudde/algo-synchrotron/synchrotron"
)

func TestGridPointsLinear(t *testing.T) {
	g := DefaultGrid()

	pts, err := g.Points()
	if err != nil {
		t.Fatal(err)
	}

	if len(pts) != 500 {
		t.Fatalf("len = %d, want 500", len(pts))
	}

	want := make([]float64, len(pts))
	for i := range want {
		want[i] = float64(i) * 100 / 500
	}

	testutil.RequireSliceNearlyEqual(t, pts, want, 1e-12)

	if pts[0] != 0 {
		t.Fatalf("first point = %v, want 0", pts[0])
	}

	if pts[len(pts)-1] >= g.Upper {
		t.Fatalf("last point %v reaches the upper bound", pts[len(pts)-1])
	}
}

func TestGridPointsLog(t *testing.T) {
	g := Grid{Lower: 1e-3, Upper: 1e3, Count: 6, Spacing: Log}

	pts, err := g.Points()
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{1e-3, 1e-2, 1e-1, 1, 1e1, 1e2}
	for i := range want {
		if testutil.RelDiff(pts[i], want[i]) > 1e-12 {
			t.Fatalf("points = %v, want %v", pts, want)
		}
	}
}

func TestGridSinglePoint(t *testing.T) {
	pts, err := Grid{Lower: 2, Upper: 3, Count: 1}.Points()
	if err != nil {
		t.Fatal(err)
	}

	if len(pts) != 1 || pts[0] != 2 {
		t.Fatalf("points = %v, want [2]", pts)
	}
}

func TestGridStrictlyIncreasing(t *testing.T) {
	for _, g := range []Grid{
		DefaultGrid(),
		{Lower: 0.01, Upper: 100, Count: 333, Spacing: Log},
		{Lower: 5, Upper: 5.001, Count: 17},
	} {
		pts, err := g.Points()
		if err != nil {
			t.Fatal(err)
		}

		for i := 1; i < len(pts); i++ {
			if !(pts[i] > pts[i-1]) {
				t.Fatalf("%+v: points[%d] = %v not above %v", g, i, pts[i], pts[i-1])
			}
		}
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Grid
	}{
		{"negative lower", Grid{Lower: -1, Upper: 1, Count: 10}},
		{"nan lower", Grid{Lower: math.NaN(), Upper: 1, Count: 10}},
		{"upper equals lower", Grid{Lower: 1, Upper: 1, Count: 10}},
		{"upper below lower", Grid{Lower: 2, Upper: 1, Count: 10}},
		{"infinite upper", Grid{Lower: 0, Upper: math.Inf(1), Count: 10}},
		{"zero count", Grid{Lower: 0, Upper: 1, Count: 0}},
		{"negative count", Grid{Lower: 0, Upper: 1, Count: -3}},
		{"log from zero", Grid{Lower: 0, Upper: 1, Count: 10, Spacing: Log}},
		{"unknown spacing", Grid{Lower: 0, Upper: 1, Count: 10, Spacing: Spacing(9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.g.Points()
			if !errors.Is(err, synchrotron.ErrDomain) {
				t.Fatalf("err = %v, want ErrDomain", err)
			}
		})
	}
}

func TestParseSpacing(t *testing.T) {
	for _, s := range []Spacing{Linear, Log} {
		got, err := ParseSpacing(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpacing(%q) = %v, %v", s.String(), got, err)
		}
	}

	if _, err := ParseSpacing("cubic"); err == nil {
		t.Error("expected error for unknown spacing")
	}
}
