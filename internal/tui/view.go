package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.Component()
	if c == nil {
		return titleStyle.Render("styler") + "\n\nThe document declares no components.\n"
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("styler • %s (%d/%d)", c.Name(), m.current+1, len(m.lib.Components))),
		stageStyle.Render(c.Render(m.Props())),
	}

	if toggles := m.toggles(); len(toggles) > 0 {
		sections = append(sections, sectionStyle.Render("Variants"), m.renderToggles(toggles))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderToggles(toggles []toggle) string {
	lines := make([]string, 0, len(toggles))
	for i, tg := range toggles {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		box := offStyle.Render("[ ]")
		if m.props.Active(tg.Prop) {
			box = onStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %d %s", pointer, box, i+1, tg.Prop)
		if tg.Global {
			line += " " + globalStyle.Render("(container)")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
