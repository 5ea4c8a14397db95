package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog returns an adapter over the built-in messages for every
// validation key, in English and Brazilian Portuguese.
func Catalog() TranslationAdapter {
	return NewFsAdapter(NewYAMLParser(), locales, "locales")
}

// NewDefault builds a Translator over the built-in catalog.
func NewDefault(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, Catalog(), opts...)
}
