package validator

import (
	"reflect"
	"strings"
)

// HasContent reports whether value carries something.
// Strings, slices and arrays need at least one element. Nil, including typed
// nil pointers, maps and funcs, is empty. Every other value has content:
// 0, false, an empty map and a pointer to "" all count.
func HasContent(value any) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Array:
		return rv.Len() > 0
	case reflect.Slice:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Map, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// RequiredAny validates that an arbitrary value has content, see HasContent.
func RequiredAny(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return HasContent(value)
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// ValidReference validates that a selected option points at a stored record.
// Identifiers start at 1, so zero and negative ids mean nothing was picked.
func ValidReference(field string, id int64) Rule {
	return Rule{
		Check: func() bool {
			return id > 0
		},
		Error: newError(field, "select an option from the list", "validation.reference", nil),
	}
}
