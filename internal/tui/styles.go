package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	stageStyle   = lipgloss.NewStyle().Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	globalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)
