package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styler/internal/kit"
	"github.com/alexisbeaulieu97/styler/internal/preview"
	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

type kitOptions struct {
	on    []string
	text  string
	title string
}

func newKitCmd() *cobra.Command {
	opts := &kitOptions{}

	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Render the built-in badge, button and alert components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := stylesheet.NewSheet(nil)
			globals := styled.NewGlobals(sheet, nil)
			k := kit.New(styled.NewFactory(sheet, globals), globals, kit.Options{})

			props := preview.Props(opts.on...)
			if opts.text != "" {
				props["text"] = opts.text
			}
			if opts.title != "" {
				props["title"] = opts.title
			}

			heading := lipgloss.NewStyle().Bold(true)
			out := cmd.OutOrStdout()
			for _, c := range k.Components() {
				fmt.Fprintln(out, heading.Render(c.Name()))
				fmt.Fprintln(out, c.Render(props))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.on, "on", nil, "Variants to switch on, e.g. danger or L (repeatable)")
	cmd.Flags().StringVar(&opts.text, "text", "", "Override the component text")
	cmd.Flags().StringVar(&opts.title, "title", "", "Alert title")

	return cmd
}
