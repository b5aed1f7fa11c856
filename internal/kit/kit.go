// Package kit ships a small set of ready-made components (badge, button,
// alert) built on the variant layer, with one tone variant per palette
// colour and the size scale registered as global container variants.
package kit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

const (
	labelElement = "Label"
	titleElement = "Title"
)

// Kit holds the built-in components.
type Kit struct {
	Badge  *styled.Component
	Button *styled.Component
	Alert  *styled.Component

	palette Palette
}

// Options configures New. Zero values select the defaults.
type Options struct {
	Palette *Palette
	Spacing []Spacing
}

// New registers the size scale with globals and creates the kit components
// through factory.
func New(factory *styled.Factory, globals *styled.Globals, opts Options) *Kit {
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	spacing := opts.Spacing
	if spacing == nil {
		spacing = DefaultSpacing()
	}

	if globals != nil {
		globals.RegisterContainerVariants(SpacingVariants(spacing))
	}

	k := &Kit{palette: palette}
	textSchema := styled.Schema{"text": styled.PropString}

	k.Badge = factory.Create(badgeBlock(palette), k.renderLabel("badge"),
		styled.WithName("kit-badge"), styled.WithSchema(textSchema))
	k.Button = factory.Create(buttonBlock(palette), k.renderLabel("button"),
		styled.WithName("kit-button"), styled.WithSchema(textSchema))
	k.Alert = factory.Create(alertBlock(palette), k.renderAlert,
		styled.WithName("kit-alert"),
		styled.WithSchema(styled.Schema{"text": styled.PropString, "title": styled.PropString}))

	return k
}

// Components returns the kit components in display order.
func (k *Kit) Components() []*styled.Component {
	return []*styled.Component{k.Badge, k.Button, k.Alert}
}

func (k *Kit) renderLabel(fallback string) styled.RenderFunc {
	return func(props styled.Props, resolve styled.Resolve) string {
		text := fallback
		if s, ok := props["text"].(string); ok && s != "" {
			text = s
		}
		label := resolve(labelElement).Render(text)
		return resolve(styled.ContainerElement).Render(label)
	}
}

func (k *Kit) renderAlert(props styled.Props, resolve styled.Resolve) string {
	message := "alert"
	if s, ok := props["text"].(string); ok && s != "" {
		message = s
	}

	icon := "ℹ"
	for _, tone := range k.palette.Tones() {
		if props.Active(styled.Normalize(tone.Variant)) {
			icon = tone.Icon
		}
	}

	lines := []string{resolve(labelElement).Render(icon + " " + message)}
	if title, ok := props["title"].(string); ok && title != "" {
		lines = append([]string{resolve(titleElement).Render(title)}, lines...)
	}
	return resolve(styled.ContainerElement).Render(strings.Join(lines, "\n"))
}

func badgeBlock(p Palette) *styled.Block[styled.Elements] {
	block := styled.NewBlock[styled.Elements]().
		Set(styled.DefaultVariant, styled.Elements{
			labelElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Padding(0, 1).Bold(true).Foreground(p.Neutral.OnBase).Background(p.Neutral.Base)
			}),
		})
	for _, tone := range p.Tones() {
		c := tone.Colours
		block.Set(tone.Variant, styled.Elements{
			labelElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Foreground(c.OnBase).Background(c.Base)
			}),
		})
	}
	return block
}

func buttonBlock(p Palette) *styled.Block[styled.Elements] {
	block := styled.NewBlock[styled.Elements]().
		Set(styled.DefaultVariant, styled.Elements{
			labelElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Padding(0, 4).Foreground(p.Neutral.OnBase).Background(p.Neutral.Muted)
			}),
		})
	for _, tone := range p.Tones() {
		c := tone.Colours
		block.Set(tone.Variant, styled.Elements{
			labelElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Foreground(c.OnBase).Background(c.Base)
			}),
		})
	}
	return block.Set("OUTLINE", styled.Elements{
		styled.ContainerElement: style(func(s lipgloss.Style) lipgloss.Style {
			return s.Border(lipgloss.RoundedBorder())
		}),
	})
}

func alertBlock(p Palette) *styled.Block[styled.Elements] {
	block := styled.NewBlock[styled.Elements]().
		Set(styled.DefaultVariant, styled.Elements{
			styled.ContainerElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Border(lipgloss.NormalBorder()).Padding(0, 1).BorderForeground(p.Neutral.Base)
			}),
			titleElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Bold(true)
			}),
		})
	for _, tone := range p.Tones() {
		c := tone.Colours
		block.Set(tone.Variant, styled.Elements{
			styled.ContainerElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.BorderForeground(c.Base)
			}),
			titleElement: style(func(s lipgloss.Style) lipgloss.Style {
				return s.Foreground(c.Muted)
			}),
		})
	}
	return block
}

func style(fn func(lipgloss.Style) lipgloss.Style) stylesheet.Style {
	return stylesheet.StyleFunc(fn)
}
