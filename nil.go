package containers

import "reflect"

// IsNil reports whether v is nil or a typed nil (pointer, map, slice, func,
// channel or interface). Containers configured to reject nil use it to check
// keys, values and elements.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
