package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	toggles := m.toggles()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(toggles)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.flip(toggles, m.cursor)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(toggles) {
				m.cursor = idx
				m.flip(toggles, idx)
			}
		}
	}
	return m, nil
}

func (m *Model) flip(toggles []toggle, idx int) {
	if idx < 0 || idx >= len(toggles) {
		return
	}
	props := m.Props()
	prop := toggles[idx].Prop
	if props.Active(prop) {
		delete(props, prop)
	} else {
		props[prop] = true
	}
	m.props = props
}

func (m *Model) cycle(step int) {
	if m.lib == nil || len(m.lib.Components) == 0 {
		return
	}
	n := len(m.lib.Components)
	m.current = (m.current + step + n) % n
	m.cursor = 0
}
