package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/datefilter/pkg/locale"
	"github.com/dmitrymomot/datefilter/pkg/logger"
)

// DefaultLocaleParam is the query parameter and cookie name checked for an
// explicit locale choice.
const DefaultLocaleParam = "lang"

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Sources            []Source
	SetContentLanguage bool
	sourcesSet         bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleSources replaces the sources checked before Accept-Language.
// Sources are tried in order; values that are not registered locales are skipped.
func WithLocaleSources(src ...Source) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Sources = src
		cfg.sourcesSet = true
	}
}

// WithoutContentLanguage disables the Content-Language response header.
func WithoutContentLanguage() LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.SetContentLanguage = false
	}
}

// Locale returns middleware that resolves the request locale and stores it in
// the request context.
//
// Resolution order: the "lang" query parameter, the "lang" cookie, the
// Accept-Language header, then the registry default.
func Locale(reg *locale.Registry, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{SetContentLanguage: true}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.sourcesSet {
		cfg.Sources = []Source{
			FromQuery(DefaultLocaleParam),
			FromCookie(DefaultLocaleParam),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := resolveLocale(reg, cfg.Sources, r)

			if cfg.SetContentLanguage {
				w.Header().Set("Content-Language", loc.Tag().String())
			}

			next.ServeHTTP(w, r.WithContext(locale.WithContext(r.Context(), loc)))
		})
	}
}

func resolveLocale(reg *locale.Registry, sources []Source, r *http.Request) *locale.Locale {
	for _, src := range sources {
		v, ok := src(r)
		if !ok {
			continue
		}
		if loc, err := reg.Lookup(v); err == nil {
			return loc
		}
	}
	return reg.Match(r.Header.Get("Accept-Language"))
}

// LocaleFromContext returns the locale resolved by the Locale middleware.
// Returns nil if the middleware is not used.
func LocaleFromContext(ctx context.Context) *locale.Locale {
	loc, _ := locale.FromContext(ctx)
	return loc
}

// LocaleExtractor returns a ContextExtractor for use with logger.New.
// Adds "locale" to log entries of requests that passed the Locale middleware.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if loc, ok := locale.FromContext(ctx); ok {
			return slog.String("locale", loc.String()), true
		}
		return slog.Attr{}, false
	}
}
