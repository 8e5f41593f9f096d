package datefilter

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/datefilter/internal"
	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// WithDefaultFormat sets the format used when a call passes none.
// A format matching "for humans" makes every call relative.
func WithDefaultFormat(format string) Option {
	return internal.WithDefaultFormat(format)
}

// WithDefaultOptions sets the options calls are merged over.
// Call-site options win on conflict.
func WithDefaultOptions(opts Options) Option {
	return internal.WithDefaultOptions(opts)
}

// WithFormatter replaces the absolute formatter.
func WithFormatter(f AbsoluteFormatter) Option {
	return internal.WithFormatter(f)
}

// WithHumanizer replaces the relative formatter.
func WithHumanizer(h RelativeFormatter) Option {
	return internal.WithHumanizer(h)
}

// WithLocales sets the locale registry of the built-in formatters.
//
// Example:
//
//	reg, err := locale.NewRegistry(
//	    locale.WithCalendars(pl.New()),
//	    locale.WithCatalogFS(catalogs),
//	)
//	f := datefilter.New(datefilter.WithLocales(reg))
func WithLocales(reg *locale.Registry) Option {
	return internal.WithLocales(reg)
}

// WithClock sets the current time source of relative mode.
func WithClock(now func() time.Time) Option {
	return internal.WithClock(now)
}

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}
