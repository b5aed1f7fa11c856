// Package styled lets terminal components declare named style variants and
// switch them on with boolean properties.
//
// # Overview
//
// A component is created from a Block of per-variant, per-element style
// fragments and a RenderFunc:
//
//	sheet := stylesheet.NewSheet(nil)
//	globals := styled.NewGlobals(sheet, nil)
//	factory := styled.NewFactory(sheet, globals)
//
//	badge := factory.Create(
//		styled.NewBlock[styled.Elements]().
//			Set("DEFAULT", styled.Elements{"Container": stylesheet.Rule{Border: "rounded"}}).
//			Set("EXTRA_LARGE", styled.Elements{"Label": stylesheet.Rule{Bold: stylesheet.Bool(true)}}),
//		func(props styled.Props, s styled.Resolve) string {
//			label := s("Label").Render("new")
//			return s("Container").Render(label)
//		},
//	)
//
//	out := badge.Render(styled.Props{"extraLarge": true})
//
// # Variants and properties
//
// Variant identifiers are upper case with underscores (EXTRA_LARGE). The
// property that activates a variant is its camelCase form (extraLarge), see
// Normalize. DEFAULT is always active.
//
// # Container variants
//
// Globals holds one set of container variants shared by every component. They
// apply only to the element named "Container" and are matched against
// properties by their raw identifier (props{"L": true}), not the camelCase form.
//
// # Style keys
//
// Fragments are stored in the stylesheet backend under
// name__element__variant for components and __RNCS__variant for container
// variants. The format is fixed so that documents and backends stay compatible.
package styled
