package kit

import "github.com/charmbracelet/lipgloss"

// ColourSet groups the colours one tone needs.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette maps every tone variant to its colours.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Tone is a colour variant shared by every kit component.
type Tone struct {
	Variant string
	Icon    string
	Colours ColourSet
}

// Tones returns the palette's tones in cascade order. Later tones win when
// several are active at once.
func (p Palette) Tones() []Tone {
	return []Tone{
		{Variant: "PRIMARY", Icon: "●", Colours: p.Primary},
		{Variant: "SECONDARY", Icon: "○", Colours: p.Secondary},
		{Variant: "SUCCESS", Icon: "✓", Colours: p.Success},
		{Variant: "INFO", Icon: "ℹ", Colours: p.Info},
		{Variant: "WARNING", Icon: "!", Colours: p.Warning},
		{Variant: "DANGER", Icon: "✗", Colours: p.Danger},
	}
}

// DefaultPalette returns the built-in light/dark palette.
func DefaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Secondary: ColourSet{
			Base:   ac("#a855f7", "#c084fc"),
			OnBase: ac("#f8fafc", "#1f2937"),
			Muted:  ac("#7c3aed", "#6b21a8"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Warning: ColourSet{
			Base:   ac("#eab308", "#facc15"),
			OnBase: ac("#422006", "#422006"),
			Muted:  ac("#ca8a04", "#a16207"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Info: ColourSet{
			Base:   ac("#06b6d4", "#22d3ee"),
			OnBase: ac("#083344", "#04121a"),
			Muted:  ac("#0891b2", "#0e7490"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}
}
