package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const styleDocument = `version: 1.0.0
container:
  L: {padding: [0, 2]}
components:
  chip:
    text: hi
    props:
      size: number
    variants:
      DEFAULT:
        Label: {padding: [0, 1]}
      EXTRA_WIDE:
        Container: {width: 12}
  tag:
    text: tagged
    variants:
      DEFAULT:
        Label: {italic: true}
`

func writeStyleDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
