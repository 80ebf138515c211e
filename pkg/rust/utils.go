package rust

import "reflect"

// IsNil reports whether i is nil or a typed nil of a nilable kind. Some
// uses it to spot nil-like payloads hiding inside a non-nil interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
