package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/styler/internal/preview"
	"github.com/alexisbeaulieu97/styler/internal/styled"
)

type previewOptions struct {
	component string
	on        []string
	text      string
	validate  bool
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render the components of a style document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Render only this component")
	cmd.Flags().StringSliceVar(&opts.on, "on", nil, "Activation properties to switch on (repeatable)")
	cmd.Flags().StringVar(&opts.text, "text", "", "Override the label text")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Reject properties that do not match a component's schema")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions, path string) error {
	lib, err := rootFlags.loadLibrary(cmd, "preview", path)
	if err != nil {
		return err
	}

	components := lib.Components
	if opts.component != "" {
		c, ok := lib.Component(opts.component)
		if !ok {
			return newCommandError("preview", fmt.Sprintf("finding component %q", opts.component), fmt.Errorf("not declared in %s", path), "Run `styler inspect` to list the declared components.")
		}
		components = []*styled.Component{c}
	}

	props := preview.Props(opts.on...)
	if opts.text != "" {
		props["text"] = opts.text
	}

	heading := lipgloss.NewStyle().Bold(true)
	if w := terminalWidth(); w > 0 {
		heading = heading.MaxWidth(w)
	}

	out := cmd.OutOrStdout()
	for i, c := range components {
		if opts.validate {
			if err := c.Validate(props); err != nil {
				return newCommandError("preview", "validating properties", err, "Pass only properties the component declares.")
			}
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, heading.Render(c.Name()))
		fmt.Fprintln(out, c.Render(props))
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
