package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildInfo() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

// setVersion wires build info into --version and the version subcommand.
func setVersion(root *cobra.Command) {
	root.Version = version
	root.SetVersionTemplate("styler " + buildInfo())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), "styler "+buildInfo())
		},
	})
}
