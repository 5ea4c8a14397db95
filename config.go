package cashflow

import (
	"errors"
	"strings"

	money "github.com/Rhymond/go-money"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/cashflow/pkg/config"
	"github.com/dmitrymomot/cashflow/pkg/logger"
	"github.com/dmitrymomot/cashflow/pkg/secrets"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// Config holds the application settings read from the environment.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"cashflow"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"pt-BR"`
	Currency      string `env:"CURRENCY" envDefault:"BRL"`
	MaxPeriodDays int    `env:"MAX_PERIOD_DAYS" envDefault:"31"`
	NameMaxLength int    `env:"NAME_MAX_LENGTH" envDefault:"120"`

	// Base64 keys of 32 bytes. Sealed storage is off unless both are set.
	StorageAppKey    string `env:"STORAGE_APP_KEY"`
	StorageClientKey string `env:"STORAGE_CLIENT_KEY"`
}

// LoadConfig reads Config from the environment, loading ./.env when present.
// The result is cached for the life of the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every setting and reports all problems at once as
// validator.ValidationErrors wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.Required("APP_NAME", c.Name),
		validator.Custom("LOG_FORMAT", "must be json or text", "validation.invalid", func() bool {
			f := logger.Format(strings.ToLower(c.LogFormat))
			return f == logger.FormatJSON || f == logger.FormatText
		}),
		validator.Custom("DEFAULT_LOCALE", "must be a language tag", "validation.invalid", func() bool {
			_, err := language.Parse(c.DefaultLocale)
			return err == nil
		}),
		validator.Custom("CURRENCY", "unknown currency", "validation.invalid", func() bool {
			return money.GetCurrency(strings.ToUpper(c.Currency)) != nil
		}),
		validator.MinNum("MAX_PERIOD_DAYS", c.MaxPeriodDays, 1),
		validator.MinNum("NAME_MAX_LENGTH", c.NameMaxLength, 1),
		validator.Custom("STORAGE_APP_KEY", "must be a base64 key of 32 bytes", "validation.invalid", func() bool {
			return validKey(c.StorageAppKey)
		}),
		validator.Custom("STORAGE_CLIENT_KEY", "must be a base64 key of 32 bytes", "validation.invalid", func() bool {
			return validKey(c.StorageClientKey)
		}),
		validator.Custom("STORAGE_CLIENT_KEY", "both storage keys must be set", "validation.invalid", func() bool {
			return (c.StorageAppKey == "") == (c.StorageClientKey == "")
		}),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// StorageEnabled reports whether both storage keys are configured.
func (c Config) StorageEnabled() bool {
	return c.StorageAppKey != "" && c.StorageClientKey != ""
}

func (c Config) loggerOptions() []logger.Option {
	return []logger.Option{
		logger.WithEnvironment(c.Env, c.Name),
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithFormat(logger.Format(strings.ToLower(c.LogFormat))),
	}
}

// validKey accepts an empty key, meaning unset.
func validKey(s string) bool {
	if s == "" {
		return true
	}
	_, err := secrets.DecodeKey(s)
	return err == nil
}

