package stylesheet

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeLaterFragmentsWin(t *testing.T) {
	t.Parallel()

	first := Rule{Foreground: "#111111", Bold: Bool(true)}
	second := Rule{Foreground: "#222222"}

	style := Compose(lipgloss.NewStyle(), first, second)

	assert.Equal(t, lipgloss.Color("#222222"), style.GetForeground())
	assert.True(t, style.GetBold(), "properties untouched by later fragments survive")
}

func TestComposeSkipsAbsentEntries(t *testing.T) {
	t.Parallel()

	style := Compose(lipgloss.NewStyle(), nil, Rule{Italic: Bool(true)}, nil)
	assert.True(t, style.GetItalic())
}

func TestChainAppliesInOrder(t *testing.T) {
	t.Parallel()

	chained := Chain(
		StyleFunc(func(s lipgloss.Style) lipgloss.Style { return s.Width(10) }),
		StyleFunc(func(s lipgloss.Style) lipgloss.Style { return s.Width(20) }),
	)
	assert.Equal(t, 20, chained.Apply(lipgloss.NewStyle()).GetWidth())
}

func TestNilStyleFuncKeepsBase(t *testing.T) {
	t.Parallel()

	var fn StyleFunc
	base := lipgloss.NewStyle().Bold(true)
	require.True(t, fn.Apply(base).GetBold())
}
