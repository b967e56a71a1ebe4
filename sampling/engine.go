package sampling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// PowerSpectrum is the total power per unit frequency of a population.
type PowerSpectrum interface {
	Ptot(w float64) (float64, error)
}

// Density is an electron distribution. The engine samples it on the same
// grid as the spectrum as a diagnostic.
type Density interface {
	N(gamma float64) float64
}

// Result holds one sampling pass. Grid, Distribution and Raw are index
// aligned.
type Result struct {
	Grid         []float64
	Distribution []float64
	Raw          []float64
	Peak         PeakRecord
}

// Engine evaluates a spectrum over a grid.
type Engine struct {
	spec PowerSpectrum
	dist Density
	cfg  EngineConfig
}

// NewEngine returns an Engine sampling spec and dist.
func NewEngine(spec PowerSpectrum, dist Density, opts ...Option) *Engine {
	return &Engine{spec: spec, dist: dist, cfg: ApplyOptions(opts...)}
}

// Sample evaluates the spectrum and the density at every point of grid in
// ascending index order and records the peak. The first error aborts the
// pass; no partial result is returned.
func (e *Engine) Sample(ctx context.Context, grid Grid) (Result, error) {
	pts, err := grid.Points()
	if err != nil {
		return Result{}, err
	}

	return e.SampleAt(ctx, pts)
}

// SampleAt is Sample on explicit frequencies. The result keeps the order of
// ws, and the peak follows the same first-maximum rule.
func (e *Engine) SampleAt(ctx context.Context, ws []float64) (Result, error) {
	start := time.Now()
	res := Result{
		Grid:         ws,
		Distribution: make([]float64, len(ws)),
		Raw:          make([]float64, len(ws)),
	}

	for i, w := range ws {
		res.Distribution[i] = e.dist.N(w)
	}

	var err error
	if e.cfg.Workers > 1 {
		err = e.sampleParallel(ctx, ws, res.Raw)
	} else {
		err = e.sampleSequential(ctx, ws, res.Raw)
	}

	if err != nil {
		return Result{}, err
	}

	res.Peak, _ = FindPeak(ws, res.Raw)

	e.cfg.Logger.Debug("spectrum sampled",
		"points", len(ws),
		"workers", max(e.cfg.Workers, 1),
		"peak_w", res.Peak.W,
		"peak_value", res.Peak.Value,
		"elapsed", time.Since(start))

	return res, nil
}

func (e *Engine) sampleSequential(ctx context.Context, pts, raw []float64) error {
	for i, w := range pts {
		err := ctx.Err()
		if err != nil {
			return err
		}

		raw[i], err = e.spec.Ptot(w)
		if err != nil {
			return fmt.Errorf("sampling: grid point %d: %w", i, err)
		}

		if e.cfg.Logger.Enabled(ctx, slog.LevelDebug) && (i+1)%progressEvery == 0 {
			e.cfg.Logger.Debug("sampling", "done", i+1, "of", len(pts))
		}
	}

	return nil
}

// sampleParallel fills raw with a bounded pool of goroutines. Each goroutine
// writes only its own index, so the result matches the sequential pass.
func (e *Engine) sampleParallel(ctx context.Context, pts, raw []float64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for i, w := range pts {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			err := gctx.Err()
			if err != nil {
				return err
			}

			v, err := e.spec.Ptot(w)
			if err != nil {
				return fmt.Errorf("sampling: grid point %d: %w", i, err)
			}

			raw[i] = v

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	// Cancellation before any goroutine started leaves Wait with nothing
	// to report.
	return ctx.Err()
}
