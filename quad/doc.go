// Package quad provides globally adaptive numerical integration of scalar
// functions over finite intervals.
//
// The integrator applies a 7/15-point Gauss–Kronrod rule and repeatedly
// bisects the subinterval with the largest error estimate until the total
// estimate satisfies
//
//	AbsErr <= max(AbsTol, RelTol*|Value|)
//
// or the subdivision budget is exhausted. The rule never evaluates the
// interval endpoints, so integrands with an integrable singularity at an
// endpoint are tolerated.
//
// # Usage
//
//	q := quad.New(quad.WithRelTol(1e-10))
//	res, err := q.Integrate(math.Sin, 0, math.Pi)
//	if err != nil {
//	    // errors.Is(err, quad.ErrNoConvergence) reports an exhausted budget;
//	    // res still holds the best estimate reached.
//	}
//	fmt.Println(res.Value) // 2
package quad
