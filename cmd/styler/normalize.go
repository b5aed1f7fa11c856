package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styler/internal/styled"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize IDENT...",
		Short: "Print the activation property name of each variant identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ident := range args {
				fmt.Fprintln(cmd.OutOrStdout(), styled.Normalize(ident))
			}
			return nil
		},
	}
}
