package internal

import (
	"fmt"
	"time"
)

// Option keys accepted by ParseOptions.
const (
	keyLocale         = "locale"
	keyAddSuffix      = "addSuffix"
	keyIncludeSeconds = "includeSeconds"
	keyFrom           = "from"
	keyTimeZone       = "timeZone"
)

// Options are the formatting options of a filter call or of a filter's defaults.
// Zero-valued fields are unset and fall through to the defaults on Merge.
type Options struct {
	// Locale is a BCP 47 tag such as "en", "es-MX" or "sk".
	Locale string

	// AddSuffix wraps relative distances as "in X" or "X ago".
	AddSuffix *bool

	// IncludeSeconds enables sub-minute precision in relative mode.
	IncludeSeconds *bool

	// From is the reference instant of relative mode. Any value accepted as a
	// date works; unset or falsy means the current time.
	From any

	// Location converts dates before absolute formatting.
	Location *time.Location
}

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool {
	return &b
}

// Merge returns a copy of o overlaid with the set fields of over.
// Neither o nor over is modified.
func (o Options) Merge(over Options) Options {
	out := o
	if over.Locale != "" {
		out.Locale = over.Locale
	}
	if over.AddSuffix != nil {
		out.AddSuffix = Bool(*over.AddSuffix)
	}
	if over.IncludeSeconds != nil {
		out.IncludeSeconds = Bool(*over.IncludeSeconds)
	}
	if over.From != nil {
		out.From = over.From
	}
	if over.Location != nil {
		out.Location = over.Location
	}
	return out
}

// ParseOptions converts a template argument into Options.
//
// Accepted inputs: nil, Options, *Options, map[string]any and map[string]string
// with the keys "locale", "addSuffix", "includeSeconds", "from" and "timeZone".
// Boolean values may be given as strings ("true"), time zones as IANA names
// or *time.Location.
func ParseOptions(v any) (Options, error) {
	switch o := v.(type) {
	case nil:
		return Options{}, nil
	case Options:
		return o, nil
	case *Options:
		if o == nil {
			return Options{}, nil
		}
		return *o, nil
	case map[string]any:
		return optionsFromMap(o)
	case map[string]string:
		m := make(map[string]any, len(o))
		for k, val := range o {
			m[k] = val
		}
		return optionsFromMap(m)
	default:
		return Options{}, fmt.Errorf("%w: unsupported options type %T", ErrInvalidOption, v)
	}
}

func optionsFromMap(m map[string]any) (Options, error) {
	var opts Options
	for key, val := range m {
		switch key {
		case keyLocale:
			s, ok := convertValue[string](val)
			if !ok {
				return Options{}, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, val)
			}
			opts.Locale = s
		case keyAddSuffix, keyIncludeSeconds:
			b, ok := convertValue[bool](val)
			if !ok {
				return Options{}, fmt.Errorf("%w: %s must be a boolean, got %v", ErrInvalidOption, key, val)
			}
			if key == keyAddSuffix {
				opts.AddSuffix = Bool(b)
			} else {
				opts.IncludeSeconds = Bool(b)
			}
		case keyFrom:
			opts.From = val
		case keyTimeZone:
			loc, err := parseLocation(val)
			if err != nil {
				return Options{}, err
			}
			opts.Location = loc
		default:
			return Options{}, fmt.Errorf("%w: unknown key %q", ErrInvalidOption, key)
		}
	}
	return opts, nil
}

func parseLocation(v any) (*time.Location, error) {
	switch l := v.(type) {
	case *time.Location:
		return l, nil
	case string:
		if l == "" {
			return nil, nil
		}
		loc, err := time.LoadLocation(l)
		if err != nil {
			return nil, fmt.Errorf("%w: timeZone %q: %v", ErrInvalidOption, l, err)
		}
		return loc, nil
	default:
		return nil, fmt.Errorf("%w: timeZone must be a string, got %T", ErrInvalidOption, v)
	}
}

// optionPairs builds Options from alternating key/value arguments, the form
// used by the dateOptions template function.
func optionPairs(pairs ...any) (Options, error) {
	if len(pairs)%2 != 0 {
		return Options{}, fmt.Errorf("%w: odd number of key/value arguments", ErrInvalidOption)
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return Options{}, fmt.Errorf("%w: key must be a string, got %T", ErrInvalidOption, pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return optionsFromMap(m)
}
