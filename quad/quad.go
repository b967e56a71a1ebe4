package quad

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Errors returned by Integrate.
var (
	ErrNoConvergence    = errors.New("quad: integration did not converge")
	ErrNonFinite        = errors.New("quad: integrand returned a non-finite value")
	ErrInvalidTolerance = errors.New("quad: tolerances must be >= 0 and not both zero")
	ErrInvalidInterval  = errors.New("quad: interval bounds must be finite")
)

// Result is the outcome of one integration.
type Result struct {
	Value       float64 // integral estimate
	AbsErr      float64 // estimated absolute error
	Evaluations int     // integrand evaluations
	Intervals   int     // subintervals in the final partition
}

// Integrator evaluates definite integrals of arbitrary scalar functions.
// It holds no per-call state and is safe for concurrent use.
type Integrator struct {
	cfg Config
}

// New creates an Integrator from the default config and opts.
func New(opts ...Option) *Integrator {
	return &Integrator{cfg: ApplyOptions(opts...)}
}

// Config returns the integrator's settings.
func (q *Integrator) Config() Config {
	return q.cfg
}

// Integrate returns ∫_a^b f(x) dx.
//
// A Result is returned together with ErrNoConvergence so the caller can
// inspect the estimate that was reached.
func (q *Integrator) Integrate(f func(float64) float64, a, b float64) (Result, error) {
	if q.cfg.AbsTol < 0 || q.cfg.RelTol < 0 || (q.cfg.AbsTol == 0 && q.cfg.RelTol == 0) {
		return Result{}, ErrInvalidTolerance
	}
	if !isFinite(a) || !isFinite(b) {
		return Result{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)
	}
	if a == b {
		return Result{}, nil
	}
	if a > b {
		res, err := q.Integrate(f, b, a)
		res.Value = -res.Value
		return res, err
	}

	limit := q.cfg.MaxSubdivisions
	if limit <= 0 {
		limit = DefaultConfig().MaxSubdivisions
	}

	first, ok := kronrod15(f, a, b)
	evals := 15
	if !ok {
		return Result{Evaluations: evals}, fmt.Errorf("%w on [%g, %g]", ErrNonFinite, a, b)
	}

	segs := &segmentHeap{first}
	total, errSum := first.value, first.err

	for errSum > q.tolerance(total) {
		if segs.Len() >= limit {
			total, errSum = segs.sums()
			return Result{Value: total, AbsErr: errSum, Evaluations: evals, Intervals: segs.Len()},
				fmt.Errorf("%w: %d subintervals, error %g > tolerance %g",
					ErrNoConvergence, segs.Len(), errSum, q.tolerance(total))
		}

		worst := heap.Pop(segs).(segment)
		mid := 0.5 * (worst.a + worst.b)
		if mid <= worst.a || mid >= worst.b {
			heap.Push(segs, worst)
			total, errSum = segs.sums()
			return Result{Value: total, AbsErr: errSum, Evaluations: evals, Intervals: segs.Len()},
				fmt.Errorf("%w: interval [%g, %g] cannot be bisected", ErrNoConvergence, worst.a, worst.b)
		}

		left, okL := kronrod15(f, worst.a, mid)
		right, okR := kronrod15(f, mid, worst.b)
		evals += 30
		if !okL || !okR {
			return Result{Evaluations: evals}, fmt.Errorf("%w on [%g, %g]", ErrNonFinite, worst.a, worst.b)
		}

		total += left.value + right.value - worst.value
		errSum += left.err + right.err - worst.err
		heap.Push(segs, left)
		heap.Push(segs, right)
	}

	total, errSum = segs.sums()
	return Result{Value: total, AbsErr: errSum, Evaluations: evals, Intervals: segs.Len()}, nil
}

func (q *Integrator) tolerance(value float64) float64 {
	return math.Max(q.cfg.AbsTol, q.cfg.RelTol*math.Abs(value))
}

// Integrate integrates f over [a, b] with a one-off Integrator built from opts.
func Integrate(f func(float64) float64, a, b float64, opts ...Option) (Result, error) {
	return New(opts...).Integrate(f, a, b)
}

// segmentHeap is a max-heap on the error estimate.
type segmentHeap []segment

func (h segmentHeap) Len() int           { return len(h) }
func (h segmentHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h segmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *segmentHeap) Push(x any) { *h = append(*h, x.(segment)) }

func (h *segmentHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

// sums recomputes the totals from scratch to shed the rounding drift of
// the incremental updates.
func (h segmentHeap) sums() (value, err float64) {
	for _, s := range h {
		value += s.value
		err += s.err
	}
	return value, err
}
