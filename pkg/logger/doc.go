// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers for the cash-flow domain.
//
// New selects a text or JSON handler, applies the configured level and static
// attributes, and wraps the handler in LogHandlerDecorator, which runs every
// registered ContextExtractor before a record is written.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "cashflow"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithContextValue("locale", localeKey{}),
//	)
//	log.Debug("cross-field effect applied",
//	    logger.Field("initial_date"),
//	    logger.Target("final_date"),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment
//   - WithFormat / WithTextFormatter / WithJSONFormatter
//   - WithLevel, WithOutput, WithAttr
//   - WithContextExtractors / WithContextValue
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("entry applied", logger.Error(err))
//
// needs no nil check. Discard returns a logger for components that were not
// given one.
package logger
