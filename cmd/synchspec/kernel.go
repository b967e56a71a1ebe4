package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synchrotron/quad"
	"github.com/cwbudde/algo-synchrotron/sampling"
	"github.com/cwbudde/algo-synchrotron/synchrotron"
)

// kernelOptions holds the flags of the kernel command.
type kernelOptions struct {
	from   float64
	to     float64
	points int
	params synchrotron.KernelParams
	quad   quad.Config
}

func newKernelCmd(logOut io.Writer, global *globalOptions) *cobra.Command {
	opts := &kernelOptions{
		from:   1e-3,
		to:     30,
		points: 25,
		params: synchrotron.DefaultKernelParams(),
		quad:   quad.DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Tabulate the synchrotron function F(x) on a log grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reportErr(logOut, global, runKernel(cmd.OutOrStdout(), opts))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.from, "from", opts.from, "first x, > 0")
	f.Float64Var(&opts.to, "to", opts.to, "x upper bound (excluded)")
	f.IntVar(&opts.points, "points", opts.points, "number of x values")
	f.Float64Var(&opts.params.InfinityCutoff, "infinity-cutoff", opts.params.InfinityCutoff, "upper limit of the kernel integral")
	f.Float64Var(&opts.quad.RelTol, "rel-tol", opts.quad.RelTol, "relative quadrature tolerance")
	f.IntVar(&opts.quad.MaxSubdivisions, "max-subdivisions", opts.quad.MaxSubdivisions, "subinterval budget per integral")

	return cmd
}

func runKernel(w io.Writer, opts *kernelOptions) error {
	xs, err := sampling.Grid{Lower: opts.from, Upper: opts.to, Count: opts.points, Spacing: sampling.Log}.Points()
	if err != nil {
		return err
	}

	k, err := synchrotron.NewKernel(opts.params, opts.quad)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("F(x) = x ∫ₓ^%g K_5/3(y) dy", k.Cutoff())))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "x\tF(x)\ttail\t")

	for _, x := range xs {
		tail, err := k.Tail(x)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%.6g\t%.10g\t%.10g\t\n", x, x*tail, tail)
	}

	return tw.Flush()
}
