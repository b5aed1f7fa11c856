package styled

import (
	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Resolve returns the styles of the named element for the current render.
type Resolve func(element string) Styles

// RenderFunc draws a component from its properties. It calls resolve once for
// every element it wants to style.
type RenderFunc func(props Props, resolve Resolve) string

// Descriptor identifies a component and its declared variants.
type Descriptor struct {
	Name     string
	Variants []Variant
}

// Component is a renderable unit produced by a Factory.
type Component struct {
	desc     Descriptor
	schema   Schema
	render   RenderFunc
	resolver *Resolver
}

// Descriptor returns the component's name and declared variants.
func (c *Component) Descriptor() Descriptor {
	variants := make([]Variant, len(c.desc.Variants))
	copy(variants, c.desc.Variants)
	return Descriptor{Name: c.desc.Name, Variants: variants}
}

// Name returns the name the component's styles are registered under.
func (c *Component) Name() string {
	return c.desc.Name
}

// Schema returns the component's declared properties.
func (c *Component) Schema() Schema {
	return MergeSchemas(nil, c.schema)
}

// Resolve returns the styles of element for props.
func (c *Component) Resolve(props Props, element string) Styles {
	if props == nil {
		props = Props{}
	}
	return c.resolver.Resolve(c.desc, props, element)
}

// Render invokes the render callback with props and a resolver bound to them.
// A nil props is treated as empty.
func (c *Component) Render(props Props) string {
	if props == nil {
		props = Props{}
	}
	if c.render == nil {
		return ""
	}
	return c.render(props, func(element string) Styles {
		return c.resolver.Resolve(c.desc, props, element)
	})
}

// Validate checks props against the component's schema.
func (c *Component) Validate(props Props) error {
	return c.schema.Validate(c.desc.Name, props)
}

// Factory registers component styles and builds Components.
type Factory struct {
	backend  stylesheet.Backend
	resolver *Resolver
	names    NameGenerator
	log      *logger.Logger
}

// FactoryOption customises a Factory.
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	names       NameGenerator
	log         *logger.Logger
	resolveOpts []ResolverOption
}

// WithNames replaces the default TimestampNames generator.
func WithNames(names NameGenerator) FactoryOption {
	return func(cfg *factoryConfig) {
		cfg.names = names
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(log *logger.Logger) FactoryOption {
	return func(cfg *factoryConfig) {
		cfg.log = log
	}
}

// WithResolverOptions configures the resolver shared by the factory's components.
func WithResolverOptions(opts ...ResolverOption) FactoryOption {
	return func(cfg *factoryConfig) {
		cfg.resolveOpts = append(cfg.resolveOpts, opts...)
	}
}

// NewFactory returns a factory registering into backend and resolving
// container variants from globals, which may be nil.
func NewFactory(backend stylesheet.Backend, globals *Globals, opts ...FactoryOption) *Factory {
	cfg := factoryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.names == nil {
		cfg.names = NewTimestampNames(nil)
	}

	return &Factory{
		backend:  backend,
		resolver: NewResolver(backend, globals, cfg.resolveOpts...),
		names:    cfg.names,
		log:      cfg.log.With("component", "factory"),
	}
}

// ComponentOption customises a single Create call.
type ComponentOption func(*componentConfig)

type componentConfig struct {
	name   string
	schema Schema
}

// WithName registers the component under name instead of a generated one.
func WithName(name string) ComponentOption {
	return func(cfg *componentConfig) {
		cfg.name = name
	}
}

// WithSchema declares the render callback's own properties. Variant-derived
// properties of the same name take precedence.
func WithSchema(schema Schema) ComponentOption {
	return func(cfg *componentConfig) {
		cfg.schema = schema
	}
}

// Create registers block under a fresh component name, one key per
// (element, variant) pair, and returns the component rendering through render.
func (f *Factory) Create(block *Block[Elements], render RenderFunc, opts ...ComponentOption) *Component {
	cfg := componentConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	name := cfg.name
	if name == "" {
		name = f.names.Next()
	}

	tree := make(map[string]map[string]stylesheet.Style)
	block.Each(func(variant string, elements Elements) {
		for element, style := range elements {
			if tree[element] == nil {
				tree[element] = make(map[string]stylesheet.Style)
			}
			tree[element][variant] = style
		}
	})
	f.backend.RegisterNested(name, tree)

	variants := Variants(block.Keys()...)
	if len(variants) == 0 {
		variants = Variants(DefaultVariant)
	}

	f.log.Debug("component created", "name", name, "variants", len(variants))

	return &Component{
		desc:     Descriptor{Name: name, Variants: variants},
		schema:   MergeSchemas(cfg.schema, VariantSchema(variants)),
		render:   render,
		resolver: f.resolver,
	}
}
