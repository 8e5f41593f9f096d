package internal

import (
	"context"
	"fmt"
	"log/slog"
)

// Registration names.
const (
	// FilterName is the name of the template filter.
	FilterName = "date"
	// MethodName is the name of the instance method.
	MethodName = "$date"
	// OptionsFuncName is the name of the template helper building Options.
	OptionsFuncName = "dateOptions"
)

// FilterRegistry is the host extension point for template filters.
type FilterRegistry interface {
	RegisterFilter(name string, fn any) error
}

// MethodRegistry is the host extension point for methods available on every
// rendered component instance.
type MethodRegistry interface {
	RegisterInstanceMethod(name string, fn any) error
}

// FuncMap is a FilterRegistry backed by a template function map.
// Convert it with template.FuncMap(m) to use it with html/template or text/template.
type FuncMap map[string]any

// RegisterFilter adds fn under name, replacing any previous entry.
func (m FuncMap) RegisterFilter(name string, fn any) error {
	m[name] = fn
	return nil
}

// Funcs returns a function map holding the "date" filter and the
// "dateOptions" helper.
func (f *Filter) Funcs() map[string]any {
	return map[string]any{
		FilterName:      f.Func(),
		OptionsFuncName: optionPairs,
	}
}

// Install builds one Filter from opts and registers it as the "date" filter
// and, when methods is not nil, as the "$date" instance method.
// Registration semantics, such as re-installation, belong to the host.
//
// Example:
//
//	engine := view.New(templatesFS)
//	_, err := datefilter.Install(engine, engine,
//	    datefilter.WithDefaultFormat("DD MMMM YYYY"),
//	)
func Install(filters FilterRegistry, methods MethodRegistry, opts ...Option) (*Filter, error) {
	if filters == nil {
		return nil, ErrNilRegistry
	}

	f := New(opts...)

	if err := filters.RegisterFilter(FilterName, f.Func()); err != nil {
		return nil, fmt.Errorf("registering filter %q: %w", FilterName, err)
	}
	if err := filters.RegisterFilter(OptionsFuncName, optionPairs); err != nil {
		return nil, fmt.Errorf("registering filter %q: %w", OptionsFuncName, err)
	}

	if methods != nil {
		if err := methods.RegisterInstanceMethod(MethodName, f.Call); err != nil {
			return nil, fmt.Errorf("registering instance method %q: %w", MethodName, err)
		}
	}

	f.logger.LogAttrs(context.Background(), slog.LevelDebug, "date filter installed",
		slog.String("filter", FilterName),
		slog.Bool("instance_method", methods != nil),
		slog.String("default_mode", modeName(f.defaultMode)),
	)
	return f, nil
}

func modeName(m Mode) string {
	switch m := m.(type) {
	case Relative:
		return "relative"
	case Absolute:
		if m.Pattern == "" {
			return "absolute"
		}
		return "absolute:" + m.Pattern
	default:
		return "unknown"
	}
}
