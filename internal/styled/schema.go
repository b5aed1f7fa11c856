package styled

import (
	"fmt"
	"reflect"
	"sort"

	styleerrors "github.com/alexisbeaulieu97/styler/pkg/errors"
)

// PropType is the declared type of a component property.
type PropType int

const (
	PropAny PropType = iota
	PropBool
	PropString
	PropNumber
)

func (t PropType) String() string {
	switch t {
	case PropBool:
		return "bool"
	case PropString:
		return "string"
	case PropNumber:
		return "number"
	default:
		return "any"
	}
}

// Accepts reports whether v is a valid value for the type. Nil is always accepted.
func (t PropType) Accepts(v any) bool {
	if v == nil {
		return true
	}
	switch t {
	case PropBool:
		_, ok := v.(bool)
		return ok
	case PropString:
		_, ok := v.(string)
		return ok
	case PropNumber:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		}
		return false
	default:
		return true
	}
}

// Schema declares the properties a component understands.
type Schema map[string]PropType

// VariantSchema declares one bool property per non-default variant.
func VariantSchema(variants []Variant) Schema {
	schema := make(Schema, len(variants))
	for _, v := range variants {
		if v.IsDefault() {
			continue
		}
		schema[v.Prop()] = PropBool
	}
	return schema
}

// MergeSchemas combines the render callback's declarations with the
// variant-derived ones. On a name collision the variant-derived entry wins.
func MergeSchemas(declared, derived Schema) Schema {
	merged := make(Schema, len(declared)+len(derived))
	for name, t := range declared {
		merged[name] = t
	}
	for name, t := range derived {
		merged[name] = t
	}
	return merged
}

// Names returns the declared property names in lexical order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks props against the schema and returns a *errors.PropError
// for the first mismatching property. Undeclared properties are ignored.
func (s Schema) Validate(component string, props Props) error {
	for _, name := range s.Names() {
		value, ok := props[name]
		if !ok {
			continue
		}
		if expected := s[name]; !expected.Accepts(value) {
			return styleerrors.NewPropError(component, name, expected.String(), fmt.Sprintf("%T", value))
		}
	}
	return nil
}
