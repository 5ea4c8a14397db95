// Package i18n renders messages, and validation errors in particular, in the
// user's language.
//
// A Translator loads its messages through a TranslationAdapter: MapAdapter
// for in-memory maps, FsAdapter for YAML catalogs in any fs.FS. Catalog
// returns the embedded English and Brazilian Portuguese messages for every
// validation key, and NewDefault builds a Translator over it.
//
// Keys are dot-separated paths into the catalog and "%{name}" placeholders
// are filled from name/value arguments:
//
//	tr, err := i18n.NewDefault(ctx, i18n.WithDefaultLanguage("pt-BR"))
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match(acceptLanguage)              // "pt-BR"
//	tr.T(lang, "validation.min_value", "minValue", "5")
//	// "O valor mínimo é 5."
//
// TranslateError and TranslateErrors render validator.ValidationError values
// using their translation key and values, falling back to the error's own
// message when the catalog has no entry.
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// and Accept-Language values resolve to the closest supported language.
package i18n
