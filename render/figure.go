package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synchrotron/analysis"
	"github.com/cwbudde/algo-synchrotron/sampling"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure size in points.
const (
	figureWidth  = 720
	figureHeight = 900
)

// Spectrum panel y range, matching a spectrum normalized to a unit peak.
const (
	spectrumYMin = 0.1
	spectrumYMax = 1.1
)

// Figure draws the electron distribution and the normalized spectrum with
// its reference overlays as two stacked log-log panels and returns the PNG
// encoding. Points that cannot be placed on log axes are left out.
func Figure(out sampling.Output, p float64) ([]byte, error) {
	if len(out.Grid) == 0 {
		return nil, errors.New("render: empty output")
	}

	dist, err := distributionPlot(out)
	if err != nil {
		return nil, err
	}

	spec, err := spectrumPlot(out, p)
	if err != nil {
		return nil, err
	}

	img := vgimg.New(vg.Points(figureWidth), vg.Points(figureHeight))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 5,
	}

	plots := [][]*plot.Plot{{dist}, {spec}}
	canvases := plot.Align(plots, tiles, dc)

	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	var buf bytes.Buffer

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}

	return buf.Bytes(), nil
}

func distributionPlot(out sampling.Output) (*plot.Plot, error) {
	p := newLogLogPlot("Electron power distribution", "γ", "N(γ)")

	pts := logXYs(out.Grid, out.Distribution)
	if len(pts) < 2 {
		return nil, errors.New("render: distribution has fewer than two positive points")
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: distribution line: %w", err)
	}

	line.Color = plotutil.Color(0)
	p.Add(line)

	return p, nil
}

func spectrumPlot(out sampling.Output, index float64) (*plot.Plot, error) {
	p := newLogLogPlot("Synchrotron spectrum", "ω", "Ptot(ω)")

	pts := logXYs(out.Grid, out.Normalized)
	if len(pts) < 2 {
		return nil, errors.New("render: spectrum has fewer than two positive points")
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: spectrum line: %w", err)
	}

	line.Color = plotutil.Color(0)
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("Ptot(ω)", line)

	curves, err := analysis.Overlays(out.Grid, index, out.Peak.W)
	if err != nil {
		return nil, err
	}

	for i, c := range curves {
		cpts := logXYs(out.Grid, c.Values)
		if len(cpts) < 2 {
			continue
		}

		l, err := plotter.NewLine(cpts)
		if err != nil {
			return nil, fmt.Errorf("render: overlay %s: %w", c.Name, err)
		}

		l.Color = plotutil.Color(i + 1)
		l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
		p.Legend.Add(c.Name, l)
	}

	// Add widens the axes to the data, so the range is fixed last.
	p.Y.Min = spectrumYMin
	p.Y.Max = spectrumYMax
	p.Legend.Top = true

	return p, nil
}

func newLogLogPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	return p
}

// logXYs keeps the pairs that are positive and finite in both coordinates.
func logXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		if !(x > 0) || !(y > 0) || math.IsInf(x, 1) || math.IsInf(y, 1) {
			continue
		}

		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	return pts
}
