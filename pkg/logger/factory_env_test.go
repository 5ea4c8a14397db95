package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/dmitrymomot/cashflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithDevelopment("svc"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=svc")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithProduction("svc"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Info("msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "svc", entry["service"])
}

func TestEnvironmentOptions(t *testing.T) {
	dev := logger.New(logger.WithDevelopment("svc"))
	prod := logger.New(logger.WithProduction("svc"))
	require.NotNil(t, dev)
	require.NotNil(t, prod)
}

func TestWithExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	type key string
	k := key("id")
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(k); v != nil {
			return slog.String("id", v.(string)), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(
		logger.WithProduction("svc"),
		logger.WithOutput(buf),
		logger.WithContextExtractors(extractor),
	)
	ctx := context.WithValue(context.Background(), k, "123")
	log.InfoContext(ctx, "msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "123", entry["id"])
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env     string
		wantEnv string
		json    bool
	}{
		{"production", logger.Production, true},
		{"PROD", logger.Production, true},
		{"staging", logger.Staging, true},
		{"development", logger.Development, false},
		{"", logger.Development, false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "cashflow"),
				logger.WithOutput(buf),
			)
			log.Info("msg")
			if tt.json {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "cashflow", entry["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
		})
	}
}

func TestWithContextValue(t *testing.T) {
	type localeKey struct{}
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("locale", localeKey{}),
	)

	log.InfoContext(context.Background(), "no locale")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["locale"]
	assert.False(t, ok)

	buf.Reset()
	ctx := context.WithValue(context.Background(), localeKey{}, "pt-BR")
	log.InfoContext(ctx, "with locale")
	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pt-BR", entry["locale"])
}
