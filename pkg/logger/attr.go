package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Target records the control a cross-field effect was applied to.
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Rule records a validation rule or translation key under the key "rule".
func Rule(key string) slog.Attr {
	return slog.String("rule", key)
}

// Locale records a language tag under the key "locale".
func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Operation records an operation name, such as a cash-flow operation or a
// storage action, under the key "operation".
func Operation(op string) slog.Attr {
	return slog.String("operation", op)
}

// ClientID records the client identifier under the key "client_id".
// If id is nil, it returns an empty Attr.
func ClientID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("client_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
