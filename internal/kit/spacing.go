package kit

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Spacing is the bottom margin, in lines, of each size variant.
type Spacing struct {
	Size  string
	Lines int
}

// DefaultSpacing returns the size scale registered as container variants.
func DefaultSpacing() []Spacing {
	return []Spacing{
		{Size: "XS", Lines: 0},
		{Size: "S", Lines: 1},
		{Size: "M", Lines: 2},
		{Size: "L", Lines: 3},
		{Size: "XL", Lines: 4},
	}
}

// SpacingVariants turns a size scale into a container-variant block.
func SpacingVariants(scale []Spacing) *styled.Block[stylesheet.Style] {
	block := styled.NewBlock[stylesheet.Style]()
	for _, s := range scale {
		lines := s.Lines
		block.Set(s.Size, stylesheet.StyleFunc(func(base lipgloss.Style) lipgloss.Style {
			return base.MarginBottom(lines)
		}))
	}
	return block
}
