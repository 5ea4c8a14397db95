package form

import (
	"maps"

	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// KeyInvalid is the translation key of errors produced by Predicate.
const KeyInvalid = "validation.invalid"

// Error is the outcome of a failed rule. A nil *Error means valid.
type Error struct {
	Message string
	Key     string
	Params  map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// ParamsString renders Params as "{minValue: 5}", or "" when there are none.
func (e *Error) ParamsString() string {
	if e == nil {
		return ""
	}
	return validator.ValidationError{TranslationValues: e.Params}.Params()
}

// ValidationError converts e into the validator representation for field.
func (e *Error) ValidationError(field string) validator.ValidationError {
	values := map[string]any{"field": field}
	maps.Copy(values, e.Params)
	return validator.ValidationError{
		Field:             field,
		Message:           e.Message,
		TranslationKey:    e.Key,
		TranslationValues: values,
	}
}

// withKey returns a copy of e under key. A nil e stays nil.
func (e *Error) withKey(key string) *Error {
	if e == nil {
		return nil
	}
	out := *e
	out.Key = key
	return &out
}

func (e *Error) equalMessage(msg string) bool {
	return e != nil && e.Message == msg
}

// fromRule runs r and converts a failure into an Error. A non-empty msg
// replaces the rule's default message.
func fromRule(msg string, r validator.Rule) *Error {
	ve := validator.First(r)
	if ve == nil {
		return nil
	}
	return fromValidation(msg, *ve)
}

// failure reports r's error without running it.
func failure(msg string, r validator.Rule) *Error {
	return fromValidation(msg, r.Error)
}

func fromValidation(msg string, ve validator.ValidationError) *Error {
	if msg == "" {
		msg = ve.Message
	}
	var params map[string]any
	for k, v := range ve.TranslationValues {
		if k == "field" {
			continue
		}
		if params == nil {
			params = make(map[string]any, len(ve.TranslationValues))
		}
		params[k] = v
	}
	return &Error{Message: msg, Key: ve.TranslationKey, Params: params}
}
