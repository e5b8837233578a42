package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styled/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "styled",
		Short:         "Build, check and preview styled terminal components from sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console output")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Logs go to the command's stderr.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: !f.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
}
