package internal

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// Option configures a Filter.
type Option func(*Filter)

// WithDefaultFormat sets the format used when a call passes none.
// A format matching "for humans" makes every call of the filter relative.
//
// Example:
//
//	datefilter.New(
//	    datefilter.WithDefaultFormat("DD.MM.YYYY HH:mm"),
//	)
func WithDefaultFormat(format string) Option {
	return func(f *Filter) {
		f.defaultMode = ParseMode(format)
	}
}

// WithDefaultOptions sets the options every call is merged over.
// Call-site options win on conflict.
func WithDefaultOptions(opts Options) Option {
	return func(f *Filter) {
		f.defaults = f.defaults.Merge(opts)
	}
}

// WithFormatter replaces the absolute formatter.
func WithFormatter(fm AbsoluteFormatter) Option {
	return func(f *Filter) {
		if fm != nil {
			f.formatter = fm
		}
	}
}

// WithHumanizer replaces the relative formatter.
func WithHumanizer(h RelativeFormatter) Option {
	return func(f *Filter) {
		if h != nil {
			f.humanizer = h
		}
	}
}

// WithLocales sets the locale registry used by the built-in formatters.
// It has no effect on formatters set with WithFormatter or WithHumanizer.
func WithLocales(reg *locale.Registry) Option {
	return func(f *Filter) {
		if reg != nil {
			f.locales = reg
		}
	}
}

// WithClock sets the source of the current time used by relative mode.
func WithClock(now func() time.Time) Option {
	return func(f *Filter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets the logger used during installation.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.logger = l
		}
	}
}
