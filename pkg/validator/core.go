package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Params renders the translation values as a compact object literal,
// e.g. "{minValue: 5}". The "field" entry is omitted and keys are sorted.
// Returns an empty string when there is nothing to render.
func (e ValidationError) Params() string {
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		if k == "field" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, e.TranslationValues[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields lists the distinct fields with errors, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First evaluates rules in order and returns the first failing error, or nil.
// Useful when only one message per field should be shown.
func First(rules ...Rule) *ValidationError {
	for _, rule := range rules {
		if !rule.Check() {
			err := rule.Error
			return &err
		}
	}
	return nil
}

// Custom wraps an arbitrary check into a Rule reporting message under key.
func Custom(field, message, key string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: newError(field, message, key, nil),
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// newError builds a ValidationError whose translation values always carry the field name.
func newError(field, message, key string, values map[string]any) ValidationError {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}
