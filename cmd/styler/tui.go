package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/styler/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newTUICmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui FILE",
		Short: "Toggle variants interactively and watch components re-render",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("start previewer", "checking terminal", errNotTerminal, "Run `styler preview` for non-interactive output.")
			}

			lib, err := rootFlags.loadLibrary(cmd, "start previewer", args[0])
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewModel(lib), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return newCommandError("start previewer", "running terminal UI", err, "Check that your terminal supports the alternate screen.")
			}
			return nil
		},
	}
}
