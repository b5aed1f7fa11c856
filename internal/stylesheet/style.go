// Package stylesheet is the style backend used by styled components: it stores
// lipgloss style fragments under string keys and composes resolved fragments
// into a single lipgloss.Style.
package stylesheet

import "github.com/charmbracelet/lipgloss"

// Style is a style fragment. Apply layers the fragment on top of base and
// returns the result; properties the fragment does not mention are kept.
type Style interface {
	Apply(base lipgloss.Style) lipgloss.Style
}

// StyleFunc adapts a plain function to Style.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// Apply implements Style.
func (fn StyleFunc) Apply(base lipgloss.Style) lipgloss.Style {
	if fn == nil {
		return base
	}
	return fn(base)
}

type chain []Style

func (c chain) Apply(base lipgloss.Style) lipgloss.Style {
	return Compose(base, c...)
}

// Chain returns a Style applying each fragment in order.
func Chain(styles ...Style) Style {
	return chain(styles)
}

// Compose applies styles to base in order, so later fragments win over
// earlier ones. Nil entries are skipped.
func Compose(base lipgloss.Style, styles ...Style) lipgloss.Style {
	for _, s := range styles {
		if s == nil {
			continue
		}
		base = s.Apply(base)
	}
	return base
}
