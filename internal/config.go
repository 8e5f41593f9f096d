package internal

import (
	"fmt"
	"time"
)

// Config holds environment-driven filter defaults.
type Config struct {
	DefaultFormat  string `env:"DATE_DEFAULT_FORMAT" envDefault:""`
	Locale         string `env:"DATE_LOCALE" envDefault:"en"`
	TimeZone       string `env:"DATE_TIMEZONE" envDefault:""`
	AddSuffix      bool   `env:"DATE_ADD_SUFFIX" envDefault:"true"`
	IncludeSeconds bool   `env:"DATE_INCLUDE_SECONDS" envDefault:"false"`
}

// Options converts the config into filter options.
func (c Config) Options() ([]Option, error) {
	defaults := Options{
		Locale:         c.Locale,
		AddSuffix:      Bool(c.AddSuffix),
		IncludeSeconds: Bool(c.IncludeSeconds),
	}
	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: DATE_TIMEZONE %q: %v", ErrInvalidOption, c.TimeZone, err)
		}
		defaults.Location = loc
	}

	return []Option{
		WithDefaultFormat(c.DefaultFormat),
		WithDefaultOptions(defaults),
	}, nil
}

// NewFromConfig creates a Filter from cfg. Additional options are applied
// after the config and take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Filter, error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	f := New(append(base, opts...)...)
	if _, err := f.Locales().Lookup(f.defaults.Locale); err != nil {
		return nil, fmt.Errorf("default locale: %w", err)
	}
	return f, nil
}
