package styled

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Styles is the ordered list of fragments resolved for one element. Entries
// for inactive or unknown variants are nil and keep their slot.
type Styles []stylesheet.Style

// Present returns the entries that resolved to a fragment.
func (s Styles) Present() Styles {
	out := make(Styles, 0, len(s))
	for _, style := range s {
		if style != nil {
			out = append(out, style)
		}
	}
	return out
}

// Style composes the entries onto a fresh lipgloss style, later entries winning.
func (s Styles) Style() lipgloss.Style {
	return stylesheet.Compose(lipgloss.NewStyle(), s...)
}

// Render renders strs with the composed style.
func (s Styles) Render(strs ...string) string {
	return s.Style().Render(strs...)
}

// Resolver computes the style list of an element from a component's
// descriptor and the properties it is rendered with.
type Resolver struct {
	backend                 stylesheet.Backend
	globals                 *Globals
	normalizeContainerProps bool
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithNormalizedContainerProps lets container variants also be activated by
// their camelCase property name, in addition to the raw identifier.
func WithNormalizedContainerProps() ResolverOption {
	return func(r *Resolver) {
		r.normalizeContainerProps = true
	}
}

// NewResolver builds a resolver reading from backend. globals may be nil.
func NewResolver(backend stylesheet.Backend, globals *Globals, opts ...ResolverOption) *Resolver {
	r := &Resolver{backend: backend, globals: globals}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns one entry per declared variant, in declared order, followed
// by the active container variants when element is "Container".
func (r *Resolver) Resolve(desc Descriptor, props Props, element string) Styles {
	styles := make(Styles, 0, len(desc.Variants))
	for _, variant := range desc.Variants {
		if variant.IsDefault() || props.Active(variant.Prop()) {
			styles = append(styles, r.backend.Lookup(ElementKey(desc.Name, element, variant.Name)))
			continue
		}
		styles = append(styles, nil)
	}

	if element != ContainerElement {
		return styles
	}

	// Container variants match the raw identifier, not its camelCase form.
	for _, key := range r.globals.Keys() {
		if props.Active(key) || (r.normalizeContainerProps && props.Active(Normalize(key))) {
			styles = append(styles, r.backend.Lookup(GlobalKey(key)))
		}
	}
	return styles
}
