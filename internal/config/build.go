package config

import (
	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// RenderBuilder returns the render callback of a component spec.
type RenderBuilder func(spec ComponentSpec) styled.RenderFunc

// ContainerBlock returns the container variants as a block.
func (d *Document) ContainerBlock() *styled.Block[stylesheet.Style] {
	block := styled.NewBlock[stylesheet.Style]()
	for _, nr := range d.Container {
		block.Set(nr.Name, nr.Rule)
	}
	return block
}

// Block returns the component's variants as a block.
func (c ComponentSpec) Block() *styled.Block[styled.Elements] {
	block := styled.NewBlock[styled.Elements]()
	for _, v := range c.Variants {
		elements := make(styled.Elements, len(v.Elements))
		for element, rule := range v.Elements {
			elements[element] = rule
		}
		block.Set(v.Name, elements)
	}
	return block
}

// Schema returns the properties the component declares beyond its variants.
func (c ComponentSpec) Schema() styled.Schema {
	schema := make(styled.Schema, len(c.Props))
	for name, kind := range c.Props {
		schema[name] = parsePropType(kind)
	}
	return schema
}

func parsePropType(kind string) styled.PropType {
	switch kind {
	case "bool":
		return styled.PropBool
	case "string":
		return styled.PropString
	case "number":
		return styled.PropNumber
	default:
		return styled.PropAny
	}
}

// Apply registers the document's container variants with globals, when it
// declares any, and creates one component per spec, named after the spec.
func (d *Document) Apply(globals *styled.Globals, factory *styled.Factory, build RenderBuilder) []*styled.Component {
	if len(d.Container) > 0 && globals != nil {
		globals.RegisterContainerVariants(d.ContainerBlock())
	}

	components := make([]*styled.Component, 0, len(d.Components))
	for _, spec := range d.Components {
		var render styled.RenderFunc
		if build != nil {
			render = build(spec)
		}
		components = append(components, factory.Create(spec.Block(), render,
			styled.WithName(spec.Name),
			styled.WithSchema(spec.Schema()),
		))
	}
	return components
}
