package distance

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// Options control how a distance is worded.
type Options struct {
	// Locale selects the phrase catalog. Empty means the registry default.
	Locale string
	// AddSuffix wraps the phrase as "in X" or "X ago".
	AddSuffix bool
	// IncludeSeconds enables sub-minute precision.
	IncludeSeconds bool
}

// Humanizer words relative distances in the language of a locale registry.
// It is immutable and safe for concurrent use.
type Humanizer struct {
	locales *locale.Registry
}

// Option configures a Humanizer.
type Option func(*Humanizer)

// WithRegistry sets the locale registry used for phrases and suffixes.
func WithRegistry(reg *locale.Registry) Option {
	return func(h *Humanizer) {
		if reg != nil {
			h.locales = reg
		}
	}
}

// New creates a Humanizer backed by the default locale registry.
func New(opts ...Option) *Humanizer {
	h := &Humanizer{}
	for _, opt := range opts {
		opt(h)
	}
	if h.locales == nil {
		h.locales = locale.DefaultRegistry()
	}
	return h
}

// Distance words the distance between the reference instant from and the date to.
func (h *Humanizer) Distance(from, to time.Time, opts Options) (string, error) {
	if from.IsZero() || to.IsZero() {
		return "", ErrInvalidRange
	}
	return h.Words(Measure(from, to, opts.IncludeSeconds), opts)
}

// Words localizes a measured distance.
func (h *Humanizer) Words(d Distance, opts Options) (string, error) {
	loc, err := h.locales.Lookup(opts.Locale)
	if err != nil {
		return "", err
	}

	phrase, err := loc.Phrase(string(d.Token), d.Count)
	if err != nil {
		return "", fmt.Errorf("wording %s: %w", d.Token, err)
	}
	if !opts.AddSuffix {
		return phrase, nil
	}
	return loc.Suffix(phrase, d.Future)
}

var defaultHumanizer = New()

// Between words the distance with the default Humanizer.
func Between(from, to time.Time, opts Options) (string, error) {
	return defaultHumanizer.Distance(from, to, opts)
}
