package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/cashflow/pkg/logger"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Translator looks up messages by language and dot-separated key.
// It is safe for concurrent use.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	langs        []string // default language first, then sorted
	matcher      language.Matcher

	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads messages from adapter. The default language must be
// one of the loaded languages when any are loaded.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.setTranslations(translations); err != nil {
		return nil, err
	}

	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("languages", t.langs),
		logger.Locale(t.defaultLang),
	)
	return t, nil
}

func (t *Translator) setTranslations(translations map[string]map[string]any) error {
	langs := make([]string, 0, len(translations))
	for lang, messages := range translations {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if messages == nil {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("language %q has no messages", lang))
		}
		if _, err := language.Parse(lang); err != nil {
			return errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)

	if len(translations) > 0 {
		if _, ok := translations[t.defaultLang]; !ok {
			return errors.Join(ErrLanguageUnsupported, fmt.Errorf("default language %q", t.defaultLang))
		}
		langs = append([]string{t.defaultLang}, langs...)
	} else {
		t.logger.Warn("no translations provided")
	}

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}

	t.translations = translations
	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	return nil
}

// SupportedLanguages lists the loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the supported language that best fits the preferences. Each
// preference may be a single tag ("pt-BR") or an Accept-Language value
// ("pt-BR,pt;q=0.9,en;q=0.5"). Without a usable match it returns the default.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.langs) == 0 {
		return t.defaultLang
	}

	var desired []language.Tag
	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether lang has a message under key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key into lang. Arguments are name/value pairs substituted
// into "%{name}" placeholders:
//
//	t.T("en", "validation.min_value", "minValue", "5") // "Minimum value is 5."
//
// Missing messages fall back to the key unless WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	fallback := ""
	if t.fallbackToKey {
		fallback = key
	}
	return t.Td(lang, key, fallback, args...)
}

// Td is T with an explicit fallback message.
func (t *Translator) Td(lang, key, fallback string, args ...string) string {
	return t.translate(lang, key, fallback, pairs(args))
}

// Tc translates using the language stored in ctx by WithLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleFrom(ctx, t.defaultLang), key, args...)
}

// TranslateError renders a validation error in lang. Its translation values
// fill the placeholders; its own message is the fallback.
func (t *Translator) TranslateError(lang string, ve validator.ValidationError) string {
	params := make(map[string]string, len(ve.TranslationValues))
	for k, v := range ve.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	return t.translate(lang, ve.TranslationKey, ve.Message, params)
}

// TranslateErrors renders every error in lang, grouped by field.
func (t *Translator) TranslateErrors(lang string, errs validator.ValidationErrors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, ve := range errs {
		out[ve.Field] = append(out[ve.Field], t.TranslateError(lang, ve))
	}
	return out
}

func (t *Translator) translate(lang, key, fallback string, params map[string]string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		t.missing("language not supported", lang, key)
		return interpolate(fallback, params)
	}

	val, ok := lookup(messages, key)
	if !ok {
		t.missing("translation not found", lang, key)
		return interpolate(fallback, params)
	}

	switch v := val.(type) {
	case string:
		return interpolate(v, params)
	case fmt.Stringer:
		return interpolate(v.String(), params)
	default:
		t.missing("translation is not a string", lang, key)
		return interpolate(fallback, params)
	}
}

func (t *Translator) missing(msg, lang, key string) {
	if t.logMissing {
		t.logger.Warn(msg, logger.Locale(lang), logger.Rule(key))
	}
}

// lookup walks nested maps along the dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces "%{name}" with params[name]; unknown names stay as written.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// pairs turns name, value, name, value... into a map. An odd trailing name is dropped.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
