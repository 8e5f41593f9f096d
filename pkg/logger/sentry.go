package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel is the lowest level forwarded to Sentry as a log entry.
	// Errors always create issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// NewWithSentry creates a logger writing to stdout and, when a DSN is set, to Sentry.
// Formatting failures logged at error level show up as Sentry issues.
// Without a DSN, or if the SDK fails to start, only stdout is used.
func NewWithSentry(log Config, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := newHandler(log, os.Stdout)

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(stdout, sentryHandler), extractors...))
}

// FlushSentry waits up to timeout for buffered Sentry events to be sent.
// It reports false if the timeout was reached first or Sentry is not initialized.
func FlushSentry(timeout time.Duration) bool {
	if sentry.CurrentHub().Client() == nil {
		return false
	}
	return sentry.Flush(timeout)
}

func sentryLevels(floor slog.Level) []slog.Level {
	levels := make([]slog.Level, 0, 4)
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= floor {
			levels = append(levels, l)
		}
	}
	if len(levels) == 0 {
		levels = append(levels, slog.LevelError)
	}
	return levels
}
