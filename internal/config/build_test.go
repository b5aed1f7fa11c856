package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

func TestApplyRegistersContainerVariantsAndComponents(t *testing.T) {
	t.Parallel()

	doc, err := ParseYAML("styles.yaml", []byte(sampleYAML))
	require.NoError(t, err)
	require.NoError(t, ValidateDocument(doc))

	sheet := stylesheet.NewSheet(nil)
	globals := styled.NewGlobals(sheet, nil)
	factory := styled.NewFactory(sheet, globals)

	var built []string
	components := doc.Apply(globals, factory, func(spec ComponentSpec) styled.RenderFunc {
		built = append(built, spec.Name)
		return func(props styled.Props, s styled.Resolve) string {
			return spec.Label()
		}
	})

	require.Len(t, components, 2)
	assert.Equal(t, []string{"badge", "alert"}, built)
	assert.Equal(t, []string{"XS", "L", "M"}, globals.Keys())

	badge := components[0]
	assert.Equal(t, "badge", badge.Name())
	assert.Equal(t, "new", badge.Render(nil))
	assert.Equal(t, styled.Schema{
		"title":      styled.PropString,
		"s":          styled.PropBool,
		"extraLarge": styled.PropBool,
	}, badge.Schema())

	container := badge.Resolve(styled.Props{"L": true}, styled.ContainerElement)
	require.Len(t, container, 4)
	assert.Equal(t, stylesheet.Rule{Margin: []int{0, 0, 3, 0}}, container[3])

	assert.NotNil(t, sheet.Lookup("alert__Container__DEFAULT"))
}

func TestApplyWithoutContainerKeepsGlobals(t *testing.T) {
	t.Parallel()

	sheet := stylesheet.NewSheet(nil)
	globals := styled.NewGlobals(sheet, nil)
	globals.RegisterContainerVariants(styled.NewBlock[stylesheet.Style]().Set("XL", stylesheet.Rule{}))
	factory := styled.NewFactory(sheet, globals)

	doc := validDocument()
	doc.Container = nil
	doc.Apply(globals, factory, nil)

	assert.Equal(t, []string{"XL"}, globals.Keys())
}

func TestComponentSchemaParsesTypes(t *testing.T) {
	t.Parallel()

	spec := ComponentSpec{Props: map[string]string{"a": "bool", "b": "string", "c": "number", "d": "any"}}
	assert.Equal(t, styled.Schema{
		"a": styled.PropBool,
		"b": styled.PropString,
		"c": styled.PropNumber,
		"d": styled.PropAny,
	}, spec.Schema())
}
