package datefilter

import (
	"github.com/dmitrymomot/datefilter/internal"
)

// Type aliases - public API
type (
	// Filter formats dates with defaults captured at construction.
	// It is immutable and safe for concurrent use.
	Filter = internal.Filter

	// Options are per-call or default formatting options.
	Options = internal.Options

	// Option configures a Filter.
	Option = internal.Option

	// Config holds environment-driven filter defaults.
	Config = internal.Config

	// Mode is the formatting strategy of a call.
	Mode = internal.Mode

	// Absolute formats the date with a token pattern.
	Absolute = internal.Absolute

	// Relative formats the distance to a reference instant.
	Relative = internal.Relative

	// AbsoluteFormatter renders a date with a token pattern.
	AbsoluteFormatter = internal.AbsoluteFormatter

	// RelativeFormatter words the distance between two instants.
	RelativeFormatter = internal.RelativeFormatter

	// FilterRegistry is the host extension point for template filters.
	FilterRegistry = internal.FilterRegistry

	// MethodRegistry is the host extension point for instance methods.
	MethodRegistry = internal.MethodRegistry

	// FuncMap is a FilterRegistry backed by a template function map.
	FuncMap = internal.FuncMap
)

// Registration names.
const (
	FilterName      = internal.FilterName
	MethodName      = internal.MethodName
	OptionsFuncName = internal.OptionsFuncName
)

// Errors
var (
	ErrInvalidArgument = internal.ErrInvalidArgument
	ErrInvalidOption   = internal.ErrInvalidOption
	ErrNilRegistry     = internal.ErrNilRegistry
)

// Default is a filter without customized defaults.
var Default = New()

// Constructors

// New creates a Filter with the given options.
//
// Example:
//
//	f := datefilter.New(
//	    datefilter.WithDefaultFormat("DD MMMM YYYY"),
//	    datefilter.WithDefaultOptions(datefilter.Options{Locale: "es"}),
//	)
//
//	s, err := f.Format(order.CreatedAt, "", datefilter.Options{})
func New(opts ...Option) *Filter {
	return internal.New(opts...)
}

// NewFromConfig creates a Filter from environment-driven configuration.
//
// Example:
//
//	var cfg datefilter.Config
//	if err := env.Parse(&cfg); err != nil {
//	    return err
//	}
//	f, err := datefilter.NewFromConfig(cfg, datefilter.WithLogger(log))
func NewFromConfig(cfg Config, opts ...Option) (*Filter, error) {
	return internal.NewFromConfig(cfg, opts...)
}

// Install registers the "date" filter and, when methods is not nil, the
// "$date" instance method on the host's registries.
//
// Example:
//
//	engine := view.New(templates)
//	if _, err := datefilter.Install(engine, engine); err != nil {
//	    return err
//	}
func Install(filters FilterRegistry, methods MethodRegistry, opts ...Option) (*Filter, error) {
	return internal.Install(filters, methods, opts...)
}

// Funcs returns a template function map with the "date" filter and the
// "dateOptions" helper, built from opts.
//
// Example:
//
//	tmpl := template.New("page").Funcs(template.FuncMap(datefilter.Funcs()))
func Funcs(opts ...Option) map[string]any {
	return New(opts...).Funcs()
}

// Format formats date with the Default filter.
func Format(date any, format string, opts Options) (string, error) {
	return Default.Format(date, format, opts)
}

// Helpers

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool {
	return internal.Bool(b)
}

// ParseOptions converts a template argument into Options.
func ParseOptions(v any) (Options, error) {
	return internal.ParseOptions(v)
}

// ParseMode converts a format string into a Mode.
func ParseMode(format string) Mode {
	return internal.ParseMode(format)
}

// IsFalsy reports whether a date value renders as an empty string.
func IsFalsy(v any) bool {
	return internal.IsFalsy(v)
}
