// Package logger builds the slog loggers used by the date filter, the view
// engine and the HTTP middlewares.
//
// Every logger is wrapped in a LogHandlerDecorator so request-scoped values
// can be attached without passing them around explicitly. The middlewares
// package ships an extractor for the resolved request locale:
//
//	log := logger.New(middlewares.LocaleExtractor())
//	log.InfoContext(r.Context(), "rendered page")
//	// {"level":"INFO","msg":"rendered page","locale":"es"}
//
// # Configuration
//
// Config and SentryConfig carry env tags and are meant to be parsed with
// github.com/caarlos0/env/v11:
//
//	LOG_LEVEL           debug, info, warn or error (default info)
//	LOG_FORMAT          json or text (default json)
//	SENTRY_DSN          enables Sentry when set
//	SENTRY_ENVIRONMENT  default production
//	SENTRY_RELEASE      optional release name
//	SENTRY_MIN_LEVEL    lowest level stored as a Sentry log (default warn)
//
// NewWithSentry writes to stdout and Sentry at the same time. Error records
// become Sentry issues. Without a DSN it degrades to stdout only, so the
// same code path works in development. Call FlushSentry before exiting.
//
// NewNope returns a discarding logger and is the default everywhere a logger
// is optional.
package logger
