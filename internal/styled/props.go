package styled

import (
	"math"
	"reflect"
)

// Props is the property bag handed to a component when it renders.
type Props map[string]any

// Active reports whether the property named key is set to a truthy value.
func (p Props) Active(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	return truthy(v)
}

// truthy treats false, "", numeric zero and nil as off; any other value is on.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
