package internal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/datefilter/pkg/datefmt"
	"github.com/dmitrymomot/datefilter/pkg/distance"
	"github.com/dmitrymomot/datefilter/pkg/locale"
	"github.com/dmitrymomot/datefilter/pkg/logger"
)

// AbsoluteFormatter renders a date with a token pattern.
// *datefmt.Formatter implements it.
type AbsoluteFormatter interface {
	Format(t time.Time, pattern string, opts datefmt.Options) (string, error)
}

// RelativeFormatter words the distance between two instants.
// *distance.Humanizer implements it.
type RelativeFormatter interface {
	Distance(from, to time.Time, opts distance.Options) (string, error)
}

// Filter formats dates with defaults captured at construction.
// Filter is immutable after creation and safe for concurrent use.
type Filter struct {
	defaultMode Mode
	defaults    Options
	formatter   AbsoluteFormatter
	humanizer   RelativeFormatter
	locales     *locale.Registry
	now         func() time.Time
	logger      *slog.Logger
}

// New creates a Filter with the given options.
// Without options it formats with the absolute formatter's default pattern.
//
// Example:
//
//	f := datefilter.New(
//	    datefilter.WithDefaultFormat("for humans"),
//	    datefilter.WithDefaultOptions(datefilter.Options{AddSuffix: datefilter.Bool(true)}),
//	)
//
//	s, err := f.Format(post.CreatedAt, "", datefilter.Options{})
//	// "3 days ago"
func New(opts ...Option) *Filter {
	f := &Filter{
		defaultMode: Absolute{},
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.locales == nil {
		f.locales = locale.DefaultRegistry()
	}
	if f.formatter == nil {
		f.formatter = datefmt.New(datefmt.WithRegistry(f.locales))
	}
	if f.humanizer == nil {
		f.humanizer = distance.New(distance.WithRegistry(f.locales))
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.logger == nil {
		f.logger = logger.NewNope()
	}
	return f
}

// Format renders date according to format and opts.
//
// Falsy dates (nil, "", 0, NaN, false, the zero time, SQL NULL) render as "".
// A format matching "for humans", or a "for humans" default format, selects
// relative mode; otherwise format, or the default format when empty, is used
// as a token pattern. opts overlays the filter's default options.
// Errors from date conversion and from the formatters are returned as-is.
func (f *Filter) Format(date any, format string, opts Options) (string, error) {
	if IsFalsy(date) {
		return "", nil
	}

	t, err := datefmt.Parse(date)
	if err != nil {
		return "", err
	}

	merged := f.defaults.Merge(opts)

	switch m := resolveMode(format, f.defaultMode).(type) {
	case Relative:
		from, err := f.reference(merged.From)
		if err != nil {
			return "", err
		}
		return f.humanizer.Distance(from, t, distance.Options{
			Locale:         merged.Locale,
			AddSuffix:      deref(merged.AddSuffix),
			IncludeSeconds: deref(merged.IncludeSeconds),
		})
	case Absolute:
		return f.formatter.Format(t, m.Pattern, datefmt.Options{
			Locale:   merged.Locale,
			Location: merged.Location,
		})
	default:
		return "", fmt.Errorf("%w: unknown mode %T", ErrInvalidArgument, m)
	}
}

// reference returns the instant relative distances are measured from.
func (f *Filter) reference(from any) (time.Time, error) {
	if IsFalsy(from) {
		return f.now(), nil
	}
	return datefmt.Parse(from)
}

// Call formats with instance-method argument order: the date first, then an
// optional format string and optional options.
//
//	{{ .Call "$date" .Data.PublishedAt "DD MMMM YYYY" }}
func (f *Filter) Call(date any, args ...any) (string, error) {
	format, opts, err := parseArgs(args)
	if err != nil {
		return "", err
	}
	return f.Format(date, format, opts)
}

// Func returns the template filter. Template pipelines pass the piped value
// last, so the date is the final argument:
//
//	{{ .CreatedAt | date }}
//	{{ .CreatedAt | date "Do MMMM YYYY" }}
//	{{ .CreatedAt | date "for humans" (dateOptions "addSuffix" true) }}
func (f *Filter) Func() func(args ...any) (string, error) {
	return func(args ...any) (string, error) {
		if len(args) == 0 {
			return "", fmt.Errorf("%w: missing date", ErrInvalidArgument)
		}
		return f.Call(args[len(args)-1], args[:len(args)-1]...)
	}
}

// WithOptions returns a derived Filter whose default options are overlaid
// with opts. The receiver is not modified.
func (f *Filter) WithOptions(opts Options) *Filter {
	clone := *f
	clone.defaults = f.defaults.Merge(opts)
	return &clone
}

// Defaults returns a copy of the filter's default options.
func (f *Filter) Defaults() Options {
	return Options{}.Merge(f.defaults)
}

// Locales returns the locale registry of the built-in formatters.
func (f *Filter) Locales() *locale.Registry {
	return f.locales
}

// DefaultMode returns the mode used when a call passes no format.
func (f *Filter) DefaultMode() Mode {
	return f.defaultMode
}

// parseArgs reads the optional (format, options) arguments of a call.
// A leading string is the format; anything else is options.
func parseArgs(args []any) (string, Options, error) {
	if len(args) > 2 {
		return "", Options{}, fmt.Errorf("%w: expected at most a format and options, got %d arguments", ErrInvalidArgument, len(args))
	}

	var format string
	rest := args
	if len(rest) > 0 {
		if s, ok := rest[0].(string); ok {
			format = s
			rest = rest[1:]
		}
	}

	if len(rest) == 0 {
		return format, Options{}, nil
	}
	if len(rest) > 1 {
		return "", Options{}, fmt.Errorf("%w: unexpected argument %T", ErrInvalidArgument, rest[1])
	}

	opts, err := ParseOptions(rest[0])
	if err != nil {
		return "", Options{}, err
	}
	return format, opts, nil
}

func deref(b *bool) bool {
	return b != nil && *b
}
