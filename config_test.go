package cashflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cashflow"
	"github.com/dmitrymomot/cashflow/pkg/secrets"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

func testConfig(t *testing.T) cashflow.Config {
	t.Helper()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	clientKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	return cashflow.Config{
		Env:              "development",
		Name:             "cashflow-test",
		LogLevel:         "debug",
		LogFormat:        "json",
		DefaultLocale:    "pt-BR",
		Currency:         "BRL",
		MaxPeriodDays:    31,
		NameMaxLength:    120,
		StorageAppKey:    secrets.EncodeKey(appKey),
		StorageClientKey: secrets.EncodeKey(clientKey),
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testConfig(t).Validate())

	noStorage := testConfig(t)
	noStorage.StorageAppKey, noStorage.StorageClientKey = "", ""
	require.NoError(t, noStorage.Validate())
	assert.False(t, noStorage.StorageEnabled())

	tests := []struct {
		name   string
		mutate func(*cashflow.Config)
		field  string
	}{
		{"empty name", func(c *cashflow.Config) { c.Name = " " }, "APP_NAME"},
		{"log format", func(c *cashflow.Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"locale", func(c *cashflow.Config) { c.DefaultLocale = "not a tag!" }, "DEFAULT_LOCALE"},
		{"currency", func(c *cashflow.Config) { c.Currency = "XXXX" }, "CURRENCY"},
		{"period", func(c *cashflow.Config) { c.MaxPeriodDays = 0 }, "MAX_PERIOD_DAYS"},
		{"name length", func(c *cashflow.Config) { c.NameMaxLength = -1 }, "NAME_MAX_LENGTH"},
		{"short app key", func(c *cashflow.Config) { c.StorageAppKey = "c2hvcnQ=" }, "STORAGE_APP_KEY"},
		{"one key only", func(c *cashflow.Config) { c.StorageClientKey = "" }, "STORAGE_CLIENT_KEY"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, cashflow.ErrInvalidConfig)
			errs := validator.ExtractValidationErrors(err)
			assert.Equal(t, []string{tt.field}, errs.Fields())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_NAME", "cashflow-env")
	t.Setenv("CURRENCY", "usd")
	t.Setenv("MAX_PERIOD_DAYS", "90")
	t.Setenv("STORAGE_APP_KEY", "")
	t.Setenv("STORAGE_CLIENT_KEY", "")

	cfg, err := cashflow.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cashflow-env", cfg.Name)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, 90, cfg.MaxPeriodDays)
	assert.Equal(t, "pt-BR", cfg.DefaultLocale)
	assert.False(t, cfg.StorageEnabled())
}
