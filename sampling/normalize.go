package sampling

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrDivisionUndefined is returned when a spectrum cannot be scaled to a
// unit peak: it is empty, holds NaN, or its maximum is not a positive
// finite number.
var ErrDivisionUndefined = errors.New("sampling: normalization divisor is undefined")

// Normalize returns raw divided by its maximum. raw is not modified. The
// maximum is the same value FindPeak reports for raw.
func Normalize(raw []float64) ([]float64, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", ErrDivisionUndefined)
	}

	if floats.HasNaN(raw) {
		return nil, fmt.Errorf("%w: spectrum holds NaN", ErrDivisionUndefined)
	}

	divisor := floats.Max(raw)
	if !(divisor > 0) || math.IsInf(divisor, 0) {
		return nil, fmt.Errorf("%w: maximum %g", ErrDivisionUndefined, divisor)
	}

	out := make([]float64, len(raw))
	vecmath.ScaleBlock(out, raw, 1/divisor)

	return out, nil
}
