package styled

import "github.com/alexisbeaulieu97/styler/internal/stylesheet"

const (
	// Prefix namespaces every key and generated name owned by this package.
	Prefix = "__RNCS"
	// DefaultVariant is always active.
	DefaultVariant = "DEFAULT"
	// ContainerElement is the only element that receives container variants.
	ContainerElement = "Container"
)

// Variant is a declared variant of a component.
type Variant struct {
	Name string
}

// Variants builds handles for the given identifiers, in order.
func Variants(names ...string) []Variant {
	out := make([]Variant, len(names))
	for i, name := range names {
		out[i] = Variant{Name: name}
	}
	return out
}

// Prop returns the property name that activates the variant.
func (v Variant) Prop() string {
	return Normalize(v.Name)
}

// IsDefault reports whether v is the always-active base variant.
func (v Variant) IsDefault() bool {
	return v.Name == DefaultVariant
}

func (v Variant) String() string {
	return v.Name
}

// ElementKey is the backend key of one element of one variant of a component.
func ElementKey(name, element, variant string) string {
	return stylesheet.Join(name, element, variant)
}

// GlobalKey is the backend key of a container variant.
func GlobalKey(variant string) string {
	return stylesheet.Join(Prefix, variant)
}
