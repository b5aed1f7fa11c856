package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/preview"
)

type rootFlags struct {
	verbose             bool
	normalizeContainers bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "styler",
		Short:         "Preview and inspect variant-driven terminal component styles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.normalizeContainers, "normalize-container-props", false, "Also activate container variants by their camelCase name")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newKitCmd())
	cmd.AddCommand(newTUICmd(flags))
	setVersion(cmd)

	return cmd
}

func (f *rootFlags) loadLibrary(cmd *cobra.Command, operation, path string) (*preview.Library, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "This is a bug; please report it.")
	}

	lib, err := preview.Load(path, preview.Options{
		Logger:                  log,
		NormalizeContainerProps: f.normalizeContainers,
	})
	if err != nil {
		log.Error(err, "style document rejected", "path", path)
		return nil, newCommandError(operation, "loading style document "+path, err, "Fix the document errors shown above and try again.")
	}
	return lib, nil
}
