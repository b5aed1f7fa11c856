package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	assert.Same(t, v1, v2, "GetValidator should return the same instance")
}

func TestVariantNameValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"single letter", "M", true},
		{"default", "DEFAULT", true},
		{"underscored", "EXTRA_LARGE", true},
		{"digits", "X2L", true},
		{"lower case", "large", false},
		{"camel case", "extraLarge", false},
		{"leading underscore", "_L", false},
		{"leading digit", "2XL", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, "variant_name")
		assert.Equal(t, tt.expected, err == nil, tt.name)
	}
}

func TestBorderNameValidation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Var("rounded", "border_name"))
	assert.Error(t, v.Var("dotted", "border_name"))
}
