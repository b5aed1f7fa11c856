// Package preview loads a style document into a ready-to-render set of
// components for the CLI and the interactive previewer.
package preview

import (
	"github.com/alexisbeaulieu97/styler/internal/config"
	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// LabelElement is the element holding a preview's text.
const LabelElement = "Label"

// Render draws text as a Label element inside a Container element.
func Render(text string) styled.RenderFunc {
	return func(props styled.Props, s styled.Resolve) string {
		label := text
		if override, ok := props["text"].(string); ok && override != "" {
			label = override
		}
		return s(styled.ContainerElement).Render(s(LabelElement).Render(label))
	}
}

// Library is a loaded document with its components registered.
type Library struct {
	Document   *config.Document
	Sheet      *stylesheet.Sheet
	Globals    *styled.Globals
	Components []*styled.Component
}

// Options configures Load.
type Options struct {
	Logger *logger.Logger
	// NormalizeContainerProps lets container variants be activated by their
	// camelCase name as well.
	NormalizeContainerProps bool
}

// Load parses the document at path and registers it in a fresh sheet.
func Load(path string, opts Options) (*Library, error) {
	doc, err := config.ParseDocument(path, opts.Logger)
	if err != nil {
		return nil, err
	}
	return New(doc, opts), nil
}

// New registers doc in a fresh sheet.
func New(doc *config.Document, opts Options) *Library {
	sheet := stylesheet.NewSheet(opts.Logger)
	globals := styled.NewGlobals(sheet, opts.Logger)

	var resolverOpts []styled.ResolverOption
	if opts.NormalizeContainerProps {
		resolverOpts = append(resolverOpts, styled.WithNormalizedContainerProps())
	}
	factory := styled.NewFactory(sheet, globals,
		styled.WithLogger(opts.Logger),
		styled.WithResolverOptions(resolverOpts...),
	)

	components := doc.Apply(globals, factory, func(spec config.ComponentSpec) styled.RenderFunc {
		return Render(spec.Label())
	})

	return &Library{
		Document:   doc,
		Sheet:      sheet,
		Globals:    globals,
		Components: components,
	}
}

// Component returns the component named name.
func (l *Library) Component(name string) (*styled.Component, bool) {
	for _, c := range l.Components {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Props builds a property bag with every named property switched on.
func Props(on ...string) styled.Props {
	props := make(styled.Props, len(on))
	for _, name := range on {
		props[name] = true
	}
	return props
}
