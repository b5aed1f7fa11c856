package stylesheet

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Rule is a declarative style fragment as it appears in style documents.
// Zero-valued fields are left untouched when the rule is applied.
type Rule struct {
	Bold             *bool  `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic           *bool  `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underline        *bool  `yaml:"underline,omitempty" toml:"underline,omitempty"`
	Faint            *bool  `yaml:"faint,omitempty" toml:"faint,omitempty"`
	Foreground       string `yaml:"foreground,omitempty" toml:"foreground,omitempty" validate:"omitempty,hexcolor|numeric"`
	Background       string `yaml:"background,omitempty" toml:"background,omitempty" validate:"omitempty,hexcolor|numeric"`
	Border           string `yaml:"border,omitempty" toml:"border,omitempty" validate:"omitempty,border_name"`
	BorderForeground string `yaml:"border_foreground,omitempty" toml:"border_foreground,omitempty" validate:"omitempty,hexcolor|numeric"`
	Padding          []int  `yaml:"padding,omitempty" toml:"padding,omitempty" validate:"omitempty,min=1,max=4,dive,min=0"`
	Margin           []int  `yaml:"margin,omitempty" toml:"margin,omitempty" validate:"omitempty,min=1,max=4,dive,min=0"`
	Width            int    `yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,min=1"`
	Align            string `yaml:"align,omitempty" toml:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"block":   lipgloss.BlockBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

var alignments = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

// BorderNames lists the border names a Rule accepts.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupBorder returns the lipgloss border registered under name.
func LookupBorder(name string) (lipgloss.Border, bool) {
	b, ok := borders[name]
	return b, ok
}

// Apply implements Style.
func (r Rule) Apply(base lipgloss.Style) lipgloss.Style {
	s := base
	if r.Bold != nil {
		s = s.Bold(*r.Bold)
	}
	if r.Italic != nil {
		s = s.Italic(*r.Italic)
	}
	if r.Underline != nil {
		s = s.Underline(*r.Underline)
	}
	if r.Faint != nil {
		s = s.Faint(*r.Faint)
	}
	if r.Foreground != "" {
		s = s.Foreground(lipgloss.Color(r.Foreground))
	}
	if r.Background != "" {
		s = s.Background(lipgloss.Color(r.Background))
	}
	if border, ok := borders[r.Border]; ok {
		s = s.BorderStyle(border)
	}
	if r.BorderForeground != "" {
		s = s.BorderForeground(lipgloss.Color(r.BorderForeground))
	}
	if n := len(r.Padding); n > 0 && n <= 4 {
		s = s.Padding(r.Padding...)
	}
	if n := len(r.Margin); n > 0 && n <= 4 {
		s = s.Margin(r.Margin...)
	}
	if r.Width > 0 {
		s = s.Width(r.Width)
	}
	if pos, ok := alignments[r.Align]; ok {
		s = s.Align(pos)
	}
	return s
}

// Bool returns a pointer to b, for filling Rule literals.
func Bool(b bool) *bool {
	return &b
}
