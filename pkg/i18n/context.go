package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/cashflow/pkg/logger"
)

type localeContextKey struct{}

// WithLocale stores the active language in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// LocaleFrom returns the language stored in ctx, or fallback.
func LocaleFrom(ctx context.Context, fallback string) string {
	if lang, ok := ctx.Value(localeContextKey{}).(string); ok && lang != "" {
		return lang
	}
	return fallback
}

// LocaleExtractor adds the active language to log records.
// It satisfies logger.ContextExtractor.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	lang := LocaleFrom(ctx, "")
	if lang == "" {
		return slog.Attr{}, false
	}
	return logger.Locale(lang), true
}

var _ logger.ContextExtractor = LocaleExtractor
