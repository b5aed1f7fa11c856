package config

import (
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Document is a parsed style document: the shared container variants and a
// set of components, each in the order the file declares them.
type Document struct {
	Path       string          `yaml:"-" toml:"-"`
	Version    string          `yaml:"version" toml:"version" validate:"required,semver"`
	Container  []NamedRule     `yaml:"-" toml:"-" validate:"omitempty,dive"`
	Components []ComponentSpec `yaml:"-" toml:"-" validate:"omitempty,dive"`
}

// NamedRule is one container variant.
type NamedRule struct {
	Name string          `validate:"required,variant_name"`
	Rule stylesheet.Rule
}

// ComponentSpec describes one component of the document.
type ComponentSpec struct {
	Name     string            `validate:"required,component_name"`
	Text     string            `yaml:"text,omitempty" toml:"text,omitempty"`
	Props    map[string]string `yaml:"props,omitempty" toml:"props,omitempty" validate:"omitempty,dive,keys,required,endkeys,oneof=any bool string number"`
	Variants []VariantSpec     `validate:"required,min=1,dive"`
}

// VariantSpec holds the per-element rules of one component variant.
type VariantSpec struct {
	Name     string                     `validate:"required,variant_name"`
	Elements map[string]stylesheet.Rule `validate:"required,min=1,dive,keys,required,endkeys"`
}

// Component returns the spec named name.
func (d *Document) Component(name string) (ComponentSpec, bool) {
	if d == nil {
		return ComponentSpec{}, false
	}
	for _, c := range d.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ComponentSpec{}, false
}

// ComponentNames lists the components in declared order.
func (d *Document) ComponentNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.Components))
	for i, c := range d.Components {
		names[i] = c.Name
	}
	return names
}

// Label is the text previews render inside the component.
func (c ComponentSpec) Label() string {
	if c.Text != "" {
		return c.Text
	}
	return c.Name
}
