package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage       = errors.New("i18n: empty language code")
	ErrInvalidLanguage     = errors.New("i18n: invalid language tag")
	ErrLanguageUnsupported = errors.New("i18n: language not supported")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse yaml content")
	ErrInvalidCatalog       = errors.New("i18n: catalog must map languages to messages")

	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir     = errors.New("i18n: failed to read translation directory")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile   = errors.New("i18n: failed to parse translation file")
	ErrNoTranslationsFound = errors.New("i18n: no translation files found")
)
