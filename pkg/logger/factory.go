package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Environment names accepted by WithEnvironment.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for unknown formats so misconfiguration fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return withEnv(Development, slog.LevelDebug, FormatText, service)
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return withEnv(Production, slog.LevelInfo, FormatJSON, service)
}

func WithStaging(service string) Option {
	return withEnv(Staging, slog.LevelInfo, FormatJSON, service)
}

// WithEnvironment picks the defaults matching env; unknown values fall back to development.
func WithEnvironment(env string, service string) Option {
	return func(c *config) {
		switch strings.ToLower(env) {
		case Production, "prod":
			WithProduction(service)(c)
		case Staging, "stage":
			WithStaging(service)(c)
		default:
			WithDevelopment(service)(c)
		}
	}
}

func withEnv(env string, level slog.Level, format Format, service string) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = level
		c.format = format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
// Anything else yields info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger whose handler injects context attributes.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}
