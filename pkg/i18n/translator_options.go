package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when nothing better matches.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing messages.
// Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing message.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}
