package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styler/internal/preview"
	"github.com/alexisbeaulieu97/styler/internal/styled"
)

type inspectOptions struct {
	on []string
}

func newInspectCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "List components, their variants, activation properties and style keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.on, "on", nil, "Activation properties to mark as active (repeatable)")

	return cmd
}

func runInspect(cmd *cobra.Command, rootFlags *rootFlags, opts *inspectOptions, path string) error {
	lib, err := rootFlags.loadLibrary(cmd, "inspect", path)
	if err != nil {
		return err
	}

	props := preview.Props(opts.on...)
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMPONENT", "VARIANT", "PROP", "ACTIVE", "KEYS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range lib.Components {
		desc := c.Descriptor()
		for _, v := range desc.Variants {
			prop := v.Prop()
			if v.IsDefault() {
				prop = "-"
			}
			t.Row(desc.Name, v.Name, prop, activeMark(v.IsDefault() || props.Active(v.Prop())), strings.Join(variantKeys(lib, desc.Name, v), "\n"))
		}
	}

	for _, k := range lib.Globals.Keys() {
		t.Row("(container)", k, k, activeMark(props.Active(k)), styled.GlobalKey(k))
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func variantKeys(lib *preview.Library, name string, v styled.Variant) []string {
	prefix := name + "__"
	suffix := "__" + v.Name
	var keys []string
	for _, key := range lib.Sheet.Keys() {
		if strings.HasPrefix(key, prefix) && strings.HasSuffix(key, suffix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func activeMark(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}
