package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/styler/internal/preview"
	"github.com/alexisbeaulieu97/styler/internal/styled"
)

// toggle is one activation property the previewer can switch.
type toggle struct {
	Prop   string
	Global bool
}

// Model is the Bubbletea state of the interactive previewer.
type Model struct {
	lib      *preview.Library
	current  int
	cursor   int
	props    styled.Props
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel builds a previewer over the components of lib.
func NewModel(lib *preview.Library) Model {
	return Model{
		lib:   lib,
		props: styled.Props{},
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Component returns the component being previewed, or nil when the library is empty.
func (m Model) Component() *styled.Component {
	if m.lib == nil || len(m.lib.Components) == 0 {
		return nil
	}
	return m.lib.Components[m.current]
}

// Props returns the properties the component is currently rendered with.
func (m Model) Props() styled.Props {
	out := make(styled.Props, len(m.props))
	for k, v := range m.props {
		out[k] = v
	}
	return out
}

// toggles lists the current component's variant properties followed by the
// container variants.
func (m Model) toggles() []toggle {
	var out []toggle
	if c := m.Component(); c != nil {
		for _, v := range c.Descriptor().Variants {
			if v.IsDefault() {
				continue
			}
			out = append(out, toggle{Prop: v.Prop()})
		}
	}
	if m.lib != nil {
		for _, k := range m.lib.Globals.Keys() {
			out = append(out, toggle{Prop: k, Global: true})
		}
	}
	return out
}
