package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinLen validates that value has at least min characters.
// Length is counted in runes, so "ação" has length 4.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: newError(field, fmt.Sprintf("must be at least %d characters long", min), "validation.min_length",
			map[string]any{"minLength": min}),
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: newError(field, fmt.Sprintf("must be at most %d characters long", max), "validation.max_length",
			map[string]any{"maxLength": max}),
	}
}

func Len(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: newError(field, fmt.Sprintf("must be exactly %d characters long", exact), "validation.exact_length",
			map[string]any{"length": exact}),
	}
}
