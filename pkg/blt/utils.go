package blt

import "reflect"

// IsNil reports whether v is nil, including a non-nil interface wrapping a
// nil chan, func, map, pointer, slice or unsafe pointer. Values of other
// kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
