package kit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styler/internal/styled"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

func newTestKit(t *testing.T, opts Options) (*Kit, *stylesheet.Sheet, *styled.Globals) {
	t.Helper()
	sheet := stylesheet.NewSheet(nil)
	globals := styled.NewGlobals(sheet, nil)
	return New(styled.NewFactory(sheet, globals), globals, opts), sheet, globals
}

func TestNewRegistersSpacingAsContainerVariants(t *testing.T) {
	t.Parallel()

	_, sheet, globals := newTestKit(t, Options{})

	require.Equal(t, []string{"XS", "S", "M", "L", "XL"}, globals.Keys())
	assert.NotNil(t, sheet.Lookup(styled.GlobalKey("XL")))
}

func TestBadgeRendersTextWithPadding(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	assert.Equal(t, " badge ", k.Badge.Render(nil))
	assert.Equal(t, " new ", k.Badge.Render(styled.Props{"text": "new", "primary": true}))
}

func TestContainerSizeAddsBottomMargin(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	out := k.Badge.Render(styled.Props{"L": true})
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, " badge "))
}

func TestButtonOutlineAddsBorder(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	assert.NotContains(t, k.Button.Render(nil), "╭")
	outlined := k.Button.Render(styled.Props{"outline": true})
	assert.Contains(t, outlined, "╭")
	assert.Contains(t, outlined, "button")
}

func TestAlertUsesLastActiveToneIcon(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	out := k.Alert.Render(styled.Props{"text": "boom", "title": "Deploy", "success": true, "danger": true})
	assert.Contains(t, out, "✗ boom")
	assert.Contains(t, out, "Deploy")
	assert.Less(t, strings.Index(out, "Deploy"), strings.Index(out, "boom"))

	assert.Contains(t, k.Alert.Render(nil), "ℹ alert")
}

func TestSchemaExposesToneProps(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	schema := k.Alert.Schema()
	assert.Equal(t, styled.PropBool, schema["danger"])
	assert.Equal(t, styled.PropString, schema["title"])
	require.Error(t, k.Alert.Validate(styled.Props{"title": 3}))
}

func TestCustomSpacing(t *testing.T) {
	t.Parallel()

	k, _, globals := newTestKit(t, Options{Spacing: []Spacing{{Size: "TIGHT", Lines: 1}}})

	assert.Equal(t, []string{"TIGHT"}, globals.Keys())
	out := k.Badge.Render(styled.Props{"TIGHT": true})
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestComponentsOrder(t *testing.T) {
	t.Parallel()

	k, _, _ := newTestKit(t, Options{})

	names := make([]string, 0, 3)
	for _, c := range k.Components() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"kit-badge", "kit-button", "kit-alert"}, names)
}

func TestTonesFollowPalette(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	tones := p.Tones()
	require.Len(t, tones, 6)
	assert.Equal(t, "PRIMARY", tones[0].Variant)
	assert.Equal(t, p.Danger, tones[len(tones)-1].Colours)
}
