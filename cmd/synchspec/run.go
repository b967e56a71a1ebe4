package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synchrotron/analysis"
	"github.com/cwbudde/algo-synchrotron/internal/config"
	"github.com/cwbudde/algo-synchrotron/render"
	"github.com/cwbudde/algo-synchrotron/sampling"
	"github.com/cwbudde/algo-synchrotron/synchrotron"
)

// Probe frequencies for the tail diagnostics, as multiples of the peak.
var (
	lowProbes  = []float64{1e-4, 1e-3, 1e-2}
	highProbes = []float64{25, 50, 100, 200}
)

// runOptions holds the flags of the run command.
type runOptions struct {
	cfg     sampling.Config
	spacing string
	table   bool
	png     string
	pdf     string
	xlsx    string
}

func newRunOptions() *runOptions {
	return &runOptions{cfg: sampling.DefaultConfig(), spacing: sampling.Linear.String()}
}

func newRunCmd(logOut io.Writer, global *globalOptions) *cobra.Command {
	opts := newRunOptions()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sample, normalize and summarize the spectrum (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reportErr(logOut, global, runSpectrum(cmd, global, opts, newLogger(logOut, global.verbose)))
		},
	}

	addRunFlags(cmd, opts)

	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	c := &opts.cfg
	f := cmd.Flags()

	f.Float64Var(&c.Population.P, "p", c.Population.P, "spectral index of N(γ) = γ^-p, > 1")
	f.Float64Var(&c.Population.GammaMin, "gamma-min", c.Population.GammaMin, "low-energy cutoff of N(γ)")
	f.Float64Var(&c.Population.Gamma1, "gamma-1", c.Population.Gamma1, "lower bound of the energy integral")
	f.Float64Var(&c.Population.Gamma2, "gamma-2", c.Population.Gamma2, "upper bound of the energy integral")
	f.Float64Var(&c.Kernel.A, "a", c.Kernel.A, "amplitude constant A")
	f.Float64Var(&c.Kernel.C, "c", c.Kernel.C, "constant C (carried, unused)")
	f.Float64Var(&c.Kernel.D, "d", c.Kernel.D, "frequency scale D")
	f.Float64Var(&c.Kernel.InfinityCutoff, "infinity-cutoff", c.Kernel.InfinityCutoff, "upper limit of the kernel integral")
	f.Float64Var(&c.Grid.Lower, "lower", c.Grid.Lower, "lowest grid frequency")
	f.Float64Var(&c.Grid.Upper, "upper", c.Grid.Upper, "grid upper bound (excluded)")
	f.IntVar(&c.Grid.Count, "points", c.Grid.Count, "number of grid points")
	f.StringVar(&opts.spacing, "spacing", opts.spacing, `grid spacing, "linear" or "log"`)
	f.Float64Var(&c.Quadrature.AbsTol, "abs-tol", c.Quadrature.AbsTol, "absolute quadrature tolerance")
	f.Float64Var(&c.Quadrature.RelTol, "rel-tol", c.Quadrature.RelTol, "relative quadrature tolerance")
	f.IntVar(&c.Quadrature.MaxSubdivisions, "max-subdivisions", c.Quadrature.MaxSubdivisions, "subinterval budget per integral")
	f.IntVar(&c.Workers, "workers", c.Workers, "grid points evaluated concurrently")
	f.BoolVar(&opts.table, "table", false, "print every sample")
	f.StringVar(&opts.png, "png", "", "write the figure to this PNG file")
	f.StringVar(&opts.pdf, "pdf", "", "write a PDF report to this file")
	f.StringVar(&opts.xlsx, "xlsx", "", "write the samples to this XLSX workbook")
}

// applyFileConfig fills every option whose flag was not given on the
// command line from the config file.
func applyFileConfig(cmd *cobra.Command, fc config.FileConfig, opts *runOptions) {
	c := &opts.cfg

	applyFloatConfig(cmd, "p", &c.Population.P, fc.Population.P)
	applyFloatConfig(cmd, "gamma-min", &c.Population.GammaMin, fc.Population.GammaMin)
	applyFloatConfig(cmd, "gamma-1", &c.Population.Gamma1, fc.Population.Gamma1)
	applyFloatConfig(cmd, "gamma-2", &c.Population.Gamma2, fc.Population.Gamma2)
	applyFloatConfig(cmd, "a", &c.Kernel.A, fc.Kernel.A)
	applyFloatConfig(cmd, "c", &c.Kernel.C, fc.Kernel.C)
	applyFloatConfig(cmd, "d", &c.Kernel.D, fc.Kernel.D)
	applyFloatConfig(cmd, "infinity-cutoff", &c.Kernel.InfinityCutoff, fc.Kernel.InfinityCutoff)
	applyFloatConfig(cmd, "lower", &c.Grid.Lower, fc.Grid.Lower)
	applyFloatConfig(cmd, "upper", &c.Grid.Upper, fc.Grid.Upper)
	applyIntConfig(cmd, "points", &c.Grid.Count, fc.Grid.Points)
	applyStringConfig(cmd, "spacing", &opts.spacing, fc.Grid.Spacing)
	applyFloatConfig(cmd, "abs-tol", &c.Quadrature.AbsTol, fc.Quadrature.AbsTol)
	applyFloatConfig(cmd, "rel-tol", &c.Quadrature.RelTol, fc.Quadrature.RelTol)
	applyIntConfig(cmd, "max-subdivisions", &c.Quadrature.MaxSubdivisions, fc.Quadrature.MaxSubdivisions)
	applyIntConfig(cmd, "workers", &c.Workers, fc.Run.Workers)
	applyStringConfig(cmd, "png", &opts.png, fc.Output.PNG)
	applyStringConfig(cmd, "pdf", &opts.pdf, fc.Output.PDF)
	applyStringConfig(cmd, "xlsx", &opts.xlsx, fc.Output.XLSX)
}

func runSpectrum(cmd *cobra.Command, global *globalOptions, opts *runOptions, logger *slog.Logger) error {
	fileCfg, err := config.LoadConfig(global.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFileConfig(cmd, fileCfg, opts)

	opts.cfg.Grid.Spacing, err = sampling.ParseSpacing(opts.spacing)
	if err != nil {
		return err
	}

	cfg := opts.cfg
	logger.Debug("configuration", "config", global.configPath, "settings", fmt.Sprintf("%+v", cfg))

	out, err := sampling.Run(cmd.Context(), cfg, sampling.WithLogger(logger))
	if err != nil {
		return err
	}

	summary, err := summarize(cmd.Context(), cfg, out)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := printSummary(w, summary); err != nil {
		return err
	}

	if opts.table {
		if err := printTable(w, out); err != nil {
			return err
		}
	}

	return writeArtifacts(opts, out, summary, logger)
}

// summarize probes the spectrum far below and above the peak to check the
// ω^(1/3) rise and the faster-than-power-law fall.
func summarize(ctx context.Context, cfg sampling.Config, out sampling.Output) (render.Summary, error) {
	s := render.Summary{Config: cfg, Peak: out.Peak}

	spec, err := sampling.Build(cfg)
	if err != nil {
		return s, err
	}

	low, err := probe(ctx, spec, out.Peak.W, lowProbes)
	if err != nil {
		return s, err
	}

	s.LowSlope, err = analysis.LogLogSlope(scaled(out.Peak.W, lowProbes), low)
	if err != nil {
		return s, fmt.Errorf("low-frequency slope: %w", err)
	}

	high, err := probe(ctx, spec, out.Peak.W, highProbes)
	if err != nil {
		return s, err
	}

	s.Steepening, err = analysis.Steepening(scaled(out.Peak.W, highProbes), high)
	if errors.Is(err, analysis.ErrTooFewPoints) {
		// The tail underflowed or hit the kernel cutoff.
		return s, nil
	}

	return s, err
}

func probe(ctx context.Context, spec *synchrotron.Spectrum, peakW float64, factors []float64) ([]float64, error) {
	ws := scaled(peakW, factors)

	res, err := sampling.NewEngine(spec, spec).SampleAt(ctx, ws)
	if err != nil {
		return nil, err
	}

	return res.Raw, nil
}

func scaled(base float64, factors []float64) []float64 {
	out := make([]float64, len(factors))
	for i, f := range factors {
		out[i] = base * f
	}

	return out
}

func printSummary(w io.Writer, s render.Summary) error {
	fmt.Fprintln(w, headingStyle.Render("Synchrotron spectrum"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range s.Rows() {
		fmt.Fprintf(tw, "  %s\t%s\n", r[0], r[1])
	}

	return tw.Flush()
}

func printTable(w io.Writer, out sampling.Output) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Samples"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "i\tw\tN(w)\tPtot\tnormalized\t")

	for i, wv := range out.Grid {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t\n", i, wv, out.Distribution[i], out.Raw[i], out.Normalized[i])
	}

	return tw.Flush()
}

func writeArtifacts(opts *runOptions, out sampling.Output, s render.Summary, logger *slog.Logger) error {
	if opts.png == "" && opts.pdf == "" {
		if opts.xlsx == "" {
			return nil
		}

		return writeXLSX(opts.xlsx, out, s, logger)
	}

	png, err := render.Figure(out, opts.cfg.Population.P)
	if err != nil {
		return err
	}

	if opts.png != "" {
		if err := os.WriteFile(opts.png, png, 0o644); err != nil {
			return fmt.Errorf("failed to write figure: %w", err)
		}

		logger.Info("wrote figure", "path", opts.png)
	}

	if opts.pdf != "" {
		if err := render.WritePDF(opts.pdf, png, s); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		logger.Info("wrote report", "path", opts.pdf)
	}

	if opts.xlsx != "" {
		return writeXLSX(opts.xlsx, out, s, logger)
	}

	return nil
}

func writeXLSX(path string, out sampling.Output, s render.Summary, logger *slog.Logger) error {
	if err := render.WriteXLSX(path, out, s); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("wrote workbook", "path", path)

	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
