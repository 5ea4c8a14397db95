package cashflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cashflow/pkg/account"
	flow "github.com/dmitrymomot/cashflow/pkg/cashflow"
	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/i18n"
	"github.com/dmitrymomot/cashflow/pkg/logger"
	"github.com/dmitrymomot/cashflow/pkg/secrets"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// App ties the forms, messages and sealed storage to one configuration.
// It is safe for concurrent use; the forms it builds are not.
type App struct {
	cfg        Config
	logger     *slog.Logger
	translator *i18n.Translator
	sealer     *secrets.Sealer
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	logOpts  []logger.Option
	logger   *slog.Logger
	messages i18n.TranslationAdapter
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *appOptions) { o.logger = l }
}

// WithLoggerOptions adds options to the logger built from the configuration,
// e.g. logger.WithOutput.
func WithLoggerOptions(opts ...logger.Option) Option {
	return func(o *appOptions) { o.logOpts = append(o.logOpts, opts...) }
}

// WithMessages replaces the built-in message catalog.
func WithMessages(adapter i18n.TranslationAdapter) Option {
	return func(o *appOptions) { o.messages = adapter }
}

// New validates cfg and builds the application services.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &appOptions{messages: i18n.Catalog()}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		logOpts := append(cfg.loggerOptions(), logger.WithContextExtractors(i18n.LocaleExtractor))
		log = logger.New(append(logOpts, o.logOpts...)...)
	}

	tr, err := i18n.NewTranslator(ctx, o.messages,
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, errors.Join(ErrTranslatorFailure, err)
	}

	app := &App{cfg: cfg, logger: log, translator: tr}

	if cfg.StorageEnabled() {
		appKey, err := secrets.DecodeKey(cfg.StorageAppKey)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		clientKey, err := secrets.DecodeKey(cfg.StorageClientKey)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		if app.sealer, err = secrets.NewSealer(appKey, clientKey); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}

	log.InfoContext(ctx, "cashflow ready",
		logger.Locale(tr.DefaultLanguage()),
		slog.String("currency", cfg.Currency),
		slog.Bool("storage", app.sealer != nil),
	)
	return app, nil
}

func (a *App) Logger() *slog.Logger { return a.logger }

func (a *App) Translator() *i18n.Translator { return a.translator }

func (a *App) Config() Config { return a.cfg }

func (a *App) LoginForm() *form.Form {
	return account.NewLoginForm(a.formOptions()...)
}

func (a *App) SignUpForm() *form.Form {
	return account.NewSignUpForm(a.cfg.NameMaxLength, a.formOptions()...)
}

func (a *App) OperationForm() *form.Form {
	return flow.NewOperationForm(a.formOptions()...)
}

// PeriodForm builds the statement filter bounded by MAX_PERIOD_DAYS.
func (a *App) PeriodForm() *form.Form {
	return flow.NewPeriodForm(a.cfg.MaxPeriodDays, a.formOptions()...)
}

// NewCash opens an empty cash in the configured currency.
func (a *App) NewCash(clientID uuid.UUID) (flow.Cash, error) {
	return flow.NewCash(clientID, a.cfg.Currency)
}

// Messages renders err for display in lang, which may be an Accept-Language
// value. Validation errors are translated per field; any other error yields
// the generic form message under FormField. A nil err gives nil.
func (a *App) Messages(lang string, err error) Messages {
	if err == nil {
		return nil
	}
	lang = a.translator.Match(lang)

	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		a.logger.Debug("untranslatable error", logger.Locale(lang), logger.Error(err))
		return Messages{FormField: {a.translator.T(lang, "form.invalid")}}
	}
	return Messages(a.translator.TranslateErrors(lang, errs))
}

// FormMessages renders the current errors of f, or nil when f shows none.
func (a *App) FormMessages(lang string, f *form.Form) Messages {
	return a.Messages(lang, f.Err())
}

// Storage seals values into backend. It fails with ErrStorageDisabled when
// the storage keys are not configured.
func (a *App) Storage(backend secrets.Backend) (*secrets.Storage, error) {
	if a.sealer == nil {
		return nil, ErrStorageDisabled
	}
	return secrets.NewStorage(a.sealer, backend, secrets.WithStorageLogger(a.logger))
}

func (a *App) formOptions() []form.Option {
	return []form.Option{form.WithLogger(a.logger)}
}
