// Package main provides the CLI entrypoint for synchspec.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/algo-synchrotron/internal/config"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

// globalOptions holds the flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	global := &globalOptions{}
	opts := newRunOptions()

	rootCmd := &cobra.Command{
		Use:           "synchspec",
		Short:         "Synchrotron spectrum of a power-law electron population",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reportErr(logOut, global, runSpectrum(cmd, global, opts, newLogger(logOut, global.verbose)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", config.DefaultConfigPath(), "path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "enable debug logging")
	addRunFlags(rootCmd, opts)

	rootCmd.AddCommand(newRunCmd(logOut, global))
	rootCmd.AddCommand(newKernelCmd(logOut, global))
	rootCmd.AddCommand(newConfigCmd(logOut, global))

	return rootCmd
}

// newLogger returns a tint handler on w, coloured only for terminals.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// reportErr logs a failed command once, so errors reach the user through the
// same handler as everything else.
func reportErr(logOut io.Writer, global *globalOptions, err error) error {
	if err != nil {
		newLogger(logOut, global.verbose).Error("synchspec failed", "err", err)
	}

	return err
}
