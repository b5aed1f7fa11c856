package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	styleerrors "github.com/alexisbeaulieu97/styler/pkg/errors"
)

// ValidateDocument checks field constraints and the cross-entry rules that
// struct tags cannot express.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return styleerrors.NewValidationError("document", "document is empty", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if len(doc.Container) == 0 && len(doc.Components) == 0 {
		return styleerrors.NewValidationError("document", "declares neither container variants nor components", nil)
	}

	seen := make(map[string]bool, len(doc.Components))
	for i, c := range doc.Components {
		if seen[c.Name] {
			return styleerrors.NewValidationError(fmt.Sprintf("components[%d]", i), fmt.Sprintf("duplicate component %q", c.Name), nil)
		}
		seen[c.Name] = true

		if err := validateVariants(i, c); err != nil {
			return err
		}
	}

	return nil
}

func validateVariants(index int, c ComponentSpec) error {
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if seen[v.Name] {
			return styleerrors.NewValidationError(fmt.Sprintf("components[%d].variants", index), fmt.Sprintf("duplicate variant %q in %s", v.Name, c.Name), nil)
		}
		seen[v.Name] = true
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return styleerrors.NewValidationError(field, msg, err)
	}

	return styleerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
