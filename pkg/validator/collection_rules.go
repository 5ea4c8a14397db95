package validator

import "fmt"

// RequiredSlice validates that a slice is not empty.
func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// MinItems validates that a slice holds at least min items.
func MinItems[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: newError(field, fmt.Sprintf("must contain at least %d items", min), "validation.min_items",
			map[string]any{"minLength": min}),
	}
}

// MaxItems validates that a slice holds at most max items.
func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: newError(field, fmt.Sprintf("must contain at most %d items", max), "validation.max_items",
			map[string]any{"maxLength": max}),
	}
}

// LenSlice validates that a slice holds exactly the required number of items.
func LenSlice[T any](field string, value []T, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: newError(field, fmt.Sprintf("must contain exactly %d items", exact), "validation.exact_items",
			map[string]any{"count": exact}),
	}
}
