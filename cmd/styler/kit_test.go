package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKitCommandRendersBuiltins(t *testing.T) {
	stdout, err := executeCommand("kit", "--on", "danger", "--text", "boom", "--title", "Deploy")
	require.NoError(t, err)
	require.Contains(t, stdout, "kit-badge")
	require.Contains(t, stdout, "kit-button")
	require.Contains(t, stdout, "kit-alert")
	require.Contains(t, stdout, "✗ boom")
	require.Contains(t, stdout, "Deploy")
}
