package cashflow

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// FormField holds messages that belong to the whole form rather than a control.
const FormField = "_form"

// Messages are translated error messages keyed by control name.
// It's based on url.Values to reuse its string slice handling.
type Messages url.Values

// Error summarizes the first message of each field, in field order.
func (m Messages) Error() string {
	if len(m) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := m[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (m Messages) Add(field, message string) {
	url.Values(m).Add(field, message)
}

// Get returns the first message for field.
func (m Messages) Get(field string) string {
	return url.Values(m).Get(field)
}

func (m Messages) Has(field string) bool {
	return len(m[field]) > 0
}

func (m Messages) IsEmpty() bool {
	return len(m) == 0
}
