package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("styles.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "styles.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: styles.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("styles.toml", 0, stdErrors.New("bad table"))
	require.Equal(t, "parse error: styles.toml: bad table", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components.badge.variants", "at least one variant is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components.badge.variants", validationErr.Field)
	require.Contains(t, err.Error(), "at least one variant is required")
}

func TestPropErrorDescribesMismatch(t *testing.T) {
	t.Parallel()

	err := NewPropError("badge", "extraLarge", "bool", "string")

	var propErr *PropError
	require.ErrorAs(t, err, &propErr)
	require.Equal(t, "extraLarge", propErr.Prop)
	require.Equal(t, `invalid prop "extraLarge" of type string supplied to badge, expected bool`, err.Error())
}
