package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synchrotron/internal/config"
)

func newConfigCmd(logOut io.Writer, global *globalOptions) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create the config file with commented defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reportErr(logOut, global, runConfigCmd(cmd.OutOrStdout(), global.configPath, printOnly))
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the template instead of writing it")

	return cmd
}

func runConfigCmd(w io.Writer, path string, printOnly bool) error {
	if printOnly {
		_, err := io.WriteString(w, config.Template)
		return err
	}

	created, err := config.WriteTemplate(path)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(w, "wrote %s\n", path)
	} else {
		fmt.Fprintf(w, "%s already exists\n", path)
	}

	return nil
}
