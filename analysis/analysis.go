// Package analysis characterizes the shape of a sampled spectrum on log-log
// axes: power-law slopes of its tails and reference curves for plots.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewPoints is returned when fewer than two points are usable on
// log-log axes.
var ErrTooFewPoints = errors.New("analysis: need at least two positive points")

const slopeSlack = 1e-9

// logPoints returns ln x and ln y for the pairs where both are positive and
// finite.
func logPoints(xs, ys []float64) (lx, ly []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("analysis: length mismatch %d vs %d", len(xs), len(ys))
	}

	for i := range xs {
		if !(xs[i] > 0) || !(ys[i] > 0) || math.IsInf(xs[i], 1) || math.IsInf(ys[i], 1) {
			continue
		}

		lx = append(lx, math.Log(xs[i]))
		ly = append(ly, math.Log(ys[i]))
	}

	if len(lx) < 2 {
		return nil, nil, ErrTooFewPoints
	}

	return lx, ly, nil
}

// LogLogSlope returns the least-squares slope of ln y against ln x. Points
// with a non-positive coordinate are skipped.
func LogLogSlope(xs, ys []float64) (float64, error) {
	lx, ly, err := logPoints(xs, ys)
	if err != nil {
		return 0, err
	}

	_, slope := stat.LinearRegression(lx, ly, nil, false)

	return slope, nil
}

// LocalSlopes returns the log-log slope between each pair of successive
// usable points.
func LocalSlopes(xs, ys []float64) ([]float64, error) {
	lx, ly, err := logPoints(xs, ys)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(lx)-1)
	for i := range out {
		out[i] = (ly[i+1] - ly[i]) / (lx[i+1] - lx[i])
	}

	return out, nil
}

// Steepening reports whether the local log-log slopes strictly decrease,
// that is whether the curve falls faster than any single power law over
// the points. Slopes equal to within rounding count as a power law. xs must
// be ascending.
func Steepening(xs, ys []float64) (bool, error) {
	slopes, err := LocalSlopes(xs, ys)
	if err != nil {
		return false, err
	}

	if len(slopes) < 2 {
		return false, ErrTooFewPoints
	}

	for i := 1; i < len(slopes); i++ {
		if !(slopes[i] < slopes[i-1]-slopeSlack*math.Abs(slopes[i-1])) {
			return false, nil
		}
	}

	return true, nil
}
