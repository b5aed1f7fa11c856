package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
	styleerrors "github.com/alexisbeaulieu97/styler/pkg/errors"
)

const sampleYAML = `version: 1.0.0
container:
  XS: {margin: [0, 0, 1, 0]}
  L: {margin: [0, 0, 3, 0]}
  M: {margin: [0, 0, 2, 0]}
components:
  badge:
    text: new
    props:
      title: string
    variants:
      DEFAULT:
        Container: {border: rounded, padding: [0, 1]}
        Label: {bold: true}
      S:
        Label: {faint: true}
      EXTRA_LARGE:
        Label: {foreground: "#f59e0b"}
  alert:
    variants:
      DEFAULT:
        Container: {border: thick}
`

const sampleTOML = `version = "1.0.0"

[container]
XS = { margin = [0, 0, 1, 0] }
L = { margin = [0, 0, 3, 0] }
M = { margin = [0, 0, 2, 0] }

[components.badge]
text = "new"
props = { title = "string" }

[components.badge.variants.DEFAULT.Container]
border = "rounded"
padding = [0, 1]

[components.badge.variants.DEFAULT.Label]
bold = true

[components.badge.variants.S.Label]
faint = true

[components.badge.variants.EXTRA_LARGE.Label]
foreground = "#f59e0b"

[components.alert.variants.DEFAULT.Container]
border = "thick"
`

func writeDocument(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func assertSampleDocument(t *testing.T, doc *Document) {
	t.Helper()

	require.Equal(t, "1.0.0", doc.Version)
	require.Len(t, doc.Container, 3)
	assert.Equal(t, []string{"XS", "L", "M"}, []string{doc.Container[0].Name, doc.Container[1].Name, doc.Container[2].Name})
	assert.Equal(t, []int{0, 0, 3, 0}, doc.Container[1].Rule.Margin)

	assert.Equal(t, []string{"badge", "alert"}, doc.ComponentNames())

	badge, ok := doc.Component("badge")
	require.True(t, ok)
	assert.Equal(t, "new", badge.Label())
	assert.Equal(t, map[string]string{"title": "string"}, badge.Props)
	require.Len(t, badge.Variants, 3)
	assert.Equal(t, "DEFAULT", badge.Variants[0].Name)
	assert.Equal(t, "S", badge.Variants[1].Name)
	assert.Equal(t, "EXTRA_LARGE", badge.Variants[2].Name)
	assert.Equal(t, stylesheet.Rule{Border: "rounded", Padding: []int{0, 1}}, badge.Variants[0].Elements["Container"])
	assert.Equal(t, stylesheet.Bool(true), badge.Variants[0].Elements["Label"].Bold)
	assert.Equal(t, "#f59e0b", badge.Variants[2].Elements["Label"].Foreground)
}

func TestParseDocumentYAML(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(writeDocument(t, "styles.yaml", sampleYAML), nil)
	require.NoError(t, err)
	assertSampleDocument(t, doc)
}

func TestParseDocumentTOML(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(writeDocument(t, "styles.toml", sampleTOML), nil)
	require.NoError(t, err)
	assertSampleDocument(t, doc)
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml reports line",
			file:     "bad.yaml",
			contents: "version: 1.0.0\ncontainer:\n  XS: [unclosed\n",
			assert: func(t *testing.T, err error) {
				var parseErr *styleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "malformed toml reports line",
			file:     "bad.toml",
			contents: "version = \"1.0.0\"\n[container\n",
			assert: func(t *testing.T, err error) {
				var parseErr *styleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown toml key",
			file:     "extra.toml",
			contents: "version = \"1.0.0\"\n[container.XS]\nshadow = true\n",
			assert: func(t *testing.T, err error) {
				var parseErr *styleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, err.Error(), "shadow")
			},
		},
		{
			name:     "container must be a mapping",
			file:     "list.yaml",
			contents: "version: 1.0.0\ncontainer: [XS, L]\n",
			assert: func(t *testing.T, err error) {
				var parseErr *styleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unsupported extension",
			file:     "styles.json",
			contents: "{}",
			assert: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "unsupported document extension")
			},
		},
		{
			name:     "invalid variant name",
			file:     "lower.yaml",
			contents: "version: 1.0.0\ncontainer:\n  large: {bold: true}\n",
			assert: func(t *testing.T, err error) {
				var validationErr *styleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "container[0].name", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseDocument(writeDocument(t, tc.file, tc.contents), nil)
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	var parseErr *styleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDocumentLogsSummary(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	_, err = ParseDocument(writeDocument(t, "styles.yaml", sampleYAML), log)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"components":2`)
	assert.Contains(t, buf.String(), `"container_variants":3`)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
	assert.Equal(t, 0, extractLine(errors.New("no position")))
	assert.Equal(t, 0, extractLine(nil))
}
